package main

import (
	"fmt"
	"strings"
)

// systemPersona is the fixed system instruction sent with every generation
// attempt; only the model identifier varies between fallback attempts.
const systemPersona = "Ты генератор прогнозов погоды. Твоя задача - преобразовать сухие данные в красивый, атмосферный текст. " +
	"ПРАВИЛА ФОРМАТИРОВАНИЯ: " +
	"2. 🌍 Используй ТОЛЬКО эмодзи, цифры, текст и пробелы " +
	"3. 📝 Разделяй текст на абзацы ПУСТОЙ СТРОКОЙ между ними " +
	"4. 🎨 Будь креативным, но точен с данными " +
	"5. ❌ НИКАКИХ звездочек, дефисов, скобок или других символов кроме текста и цифр"

// buildForecastPrompt renders the fixed prompt template from normalized
// weather facts. It has no side effects; the report date is taken from the
// facts and explicitly pinned so the model cannot change it mid-text.
func buildForecastPrompt(facts WeatherFacts) string {
	var b strings.Builder

	b.WriteString("Сделай красивый прогноз погоды на основе этих данных:\n")
	fmt.Fprintf(&b, "Текущая погода: Состояние: %s\n", facts.Condition)
	fmt.Fprintf(&b, "🌡️ Температура: %d°C\n", facts.TemperatureC)
	fmt.Fprintf(&b, "💨 Ветер: %v м/с\n", facts.WindSpeedMS)
	fmt.Fprintf(&b, "💧 Влажность: %d%%\n", facts.Humidity)
	fmt.Fprintf(&b, "📊 Давление: %d мм рт.ст.\n", facts.PressureMmHg)
	b.WriteString(facts.Precipitation + "\n")
	if facts.CloudCover != nil {
		fmt.Fprintf(&b, "☁️ Облачность: %d%%\n", *facts.CloudCover)
	}
	fmt.Fprintf(&b, "дата составления прогноза: %s\n", facts.ReportDate)
	b.WriteString("дата составления прогноза не должна меняться в течение одного текста\n")
	b.WriteString("Оформи красиво, с эмодзи и кратко, чтобы это можно было вывести в компонент как текст.\n")
	b.WriteString("Добавь рекомендации для человека по нахождению на открытом воздухе.")

	return b.String()
}

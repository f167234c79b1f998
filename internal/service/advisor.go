package service

import "strings"

// Advisor encapsula la selección de respuestas de bienestar por palabras clave.
type Advisor struct{}

// DefaultAdvisor permite uso directo sin instanciar.
var DefaultAdvisor = Advisor{}

// disclaimer se agrega al final de toda respuesta generada.
const disclaimer = "Note: This is general wellness information and not a medical diagnosis. " +
	"Consult a qualified clinician for personalized care or urgent concerns."

// category asocia un conjunto de palabras clave con una plantilla fija.
type category struct {
	keywords []string
	template string
}

// categories se evalúa en orden estricto: gana la primera coincidencia.
// El fallback de seguridad va después de las categorías temáticas; ese orden
// viene del comportamiento original y los tests lo fijan.
var categories = []category{
	{
		keywords: []string{"tongue", "coating", "ulcer", "sores", "oral", "thrush", "mouth"},
		template: "Tongue health quick read:\n" +
			"• Typical: pink, moist, thin white coating.\n" +
			"• Thick white/yellow coating: dehydration, oral hygiene issues, or possible fungal overgrowth.\n" +
			"• Red/pebbled or very smooth: possible nutrient gaps (B12, iron), irritation, or heat/spice.\n" +
			"• Ulcers/sores: consider trauma, stress, vitamin B/iron, or viral causes.\n" +
			"Care steps: hydrate, brush tongue gently, avoid irritants, ensure balanced nutrition, and see a dentist/clinician if persistent (>2 weeks), painful, or with fever.",
	},
	{
		keywords: []string{"workout", "training", "gym", "strength", "cardio", "hypertrophy", "fat loss", "muscle"},
		template: "Smart training plan:\n" +
			"• Weekly: 2–3 strength sessions + 150–300 min moderate cardio (or 75–150 min vigorous).\n" +
			"• Lifts: focus on compounds (squat, hinge, push, pull), add accessories; 6–12 reps for hypertrophy, 2–3 RIR.\n" +
			"• Progression: add small load or reps weekly; deload every 4–8 weeks.\n" +
			"• Recovery: sleep 7–9h, protein 1.6–2.2 g/kg/day, manage stress.",
	},
	{
		keywords: []string{"diet", "nutrition", "protein", "calorie", "macro", "meal", "keto", "fasting", "fiber"},
		template: "Nutrition basics:\n" +
			"• Build plates: 40% veggies, 30% lean protein, 20% smart carbs, 10% healthy fats.\n" +
			"• Protein: ~1.6–2.2 g/kg/day; distribute across meals.\n" +
			"• Fiber: 25–38 g/day from plants; hydrate well.\n" +
			"• Weight goals: modest deficit (250–500 kcal) for fat loss; small surplus for muscle gain.\n" +
			"• Adherence beats perfection—choose a pattern you can sustain.",
	},
	{
		keywords: []string{"records", "labs", "blood work", "medical history", "medication", "symptom", "log", "trend"},
		template: "Better health record-keeping:\n" +
			"• Keep a simple log with dates for symptoms, diagnoses, meds/supplements, allergies, and key vitals (BP, HR, weight).\n" +
			"• Track labs as a table (test, value, range, date); add notes and questions for your visit.\n" +
			"• Export/share a concise summary (1 page) with your clinician.\n" +
			"• Secure storage and backups are important; protect sensitive info.",
	},
	{
		keywords: []string{"sleep", "stress", "wellness", "energy", "recovery", "habit", "routine", "mindfulness", "hydrate"},
		template: "Core wellness habits:\n" +
			"• Sleep: 7–9 hours, consistent schedule, dark/cool room.\n" +
			"• Stress: brief daily decompression (walks, breathing, journaling).\n" +
			"• Movement: stand and stroll breaks every hour; sunlight in the morning.\n" +
			"• Hydration: ~30–35 ml/kg/day; more in heat/exercise.",
	},
	{
		keywords: []string{"chest pain", "shortness of breath", "severe", "emergency", "fainted", "suicidal", "stroke"},
		template: "Your symptoms could be urgent. Please seek immediate in-person medical care or call local emergency services.",
	},
}

// defaultTemplate responde cuando ninguna categoría coincide.
const defaultTemplate = "I can help with training plans, macro-friendly meals, tongue health cues, organizing medical records, and daily wellness habits. " +
	"Tell me more about your goal or question (e.g., '3-day full-body plan' or 'interpret white tongue coating')."

// Reply produce exactamente una respuesta para cualquier texto de entrada.
// La comparación es por substring sobre el texto en minúsculas; no hay
// tokenización ni stemming. Función pura, sin estado ni errores.
func (Advisor) Reply(text string) string {
	q := strings.TrimSpace(strings.ToLower(text))

	for _, cat := range categories {
		for _, kw := range cat.keywords {
			if strings.Contains(q, kw) {
				return cat.template + "\n\n" + disclaimer
			}
		}
	}
	return defaultTemplate + "\n\n" + disclaimer
}

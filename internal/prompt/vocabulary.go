package prompt

import "math/rand"

// Vocabulary banks the title prompts sample from so repeated generations
// do not converge on the same phrasing. Spanish because the target
// channels publish in Spanish.

var techVocabulary = map[string][]string{
	"accion": {
		"Solucionar", "Reparar", "Restaurar", "Corregir", "Eliminar", "Quitar",
		"Potenciar", "Optimizar", "Acelerar", "Configurar", "Activar", "Desactivar",
		"Actualizar", "Migrar", "Instalar", "Desinstalar", "Recuperar", "Rescatar",
		"Arreglar", "Debugear", "Limpiar", "Boost", "Tunear", "Hackear",
		"Automatizar", "Simplificar", "Revertir", "Forzar",
	},
	"seguridad": {
		"Sin Formatear", "Sin Perder Datos", "Método Seguro", "Reversible",
		"Sin Riesgos", "Respaldo Incluido", "Protegido", "Con Backup",
		"No Destructivo", "Safe Mode", "Modo Seguro", "Sin Root",
		"Sin Admin", "Sin Permisos", "Portable", "Sin Instalar",
		"Probado", "Confiable", "Sin Virus", "Limpio",
	},
	"velocidad": {
		"Al Instante", "En 1 Minuto", "Rápido", "Express", "Ya", "En Segundos",
		"Inmediato", "Sin Espera", "Ultra Rápido", "Flash", "One-Click",
		"Automático", "En 3 Pasos", "En 5 Minutos", "Speedrun", "Turbo",
		"Sin Complicaciones", "Directo", "Fast", "Quick Fix",
	},
	"autoridad": {
		"Definitivo", "Garantizado", "100% Efectivo", "Solución Final", "Método 2025",
		"Comprobado", "Oficial", "El Mejor", "Profesional", "Experto", "Advanced",
		"Pro", "Ultimate", "Master", "Premium", "Gold", "Certified",
		"Verificado", "Testeado", "Método Real", "Sin Fake", "Funciona 2025",
		"Actualizado", "Última Versión", "Nueva Forma",
	},
}

var growthVocabulary = map[string][]string{
	"dolor": {
		"Vacío", "Soledad", "Fracaso", "Ansiedad", "Cansado", "Ignorado", "Perdido",
		"Estancado", "Débil", "Confundido", "Roto", "Deprimido", "Agotado", "Frustrado",
		"Pobreza Mental", "Mente Dispersa", "Sin Rumbo", "Bloqueado", "Atrapado",
		"Mediocre", "Invisible", "Inseguro", "Cobarde", "Conformista", "Víctima",
		"Sin Dinero", "Sin Propósito", "Sin Motivación", "Sin Energía", "Sin Amigos",
		"Procrastinando", "Comparándote", "Autosaboteándote", "Sufriendo en Silencio",
	},
	"revelacion": {
		"La Verdad", "El Secreto", "Lo que nadie te dice", "La Mentira", "Despertar",
		"La Regla Oculta", "El Error", "La Trampa", "El Lado Oscuro", "La Realidad",
		"Lo que Descubrí", "El Patrón Oculto", "La Fórmula Prohibida", "El Método Secreto",
		"La Lección Oculta", "El Código", "La Clave", "El Truco Mental",
		"La Paradoja", "Lo Opuesto", "Al Revés", "La Ironía", "El Absurdo",
		"La Contradicción", "Lo que No Ves", "El Punto Ciego",
	},
	"autoridad": {
		"Marco Aurelio", "Séneca", "Epicteto", "Los Estoicos", "Lección Antigua",
		"Sabiduría Japonesa", "El Monje", "Filosofía Milenaria", "Buda", "Lao Tzu",
		"La Ciencia", "Neurociencia", "Psicología", "Estudios de Harvard", "Carl Jung",
		"Viktor Frankl", "La Investigación", "Los Expertos", "Datos Reales",
		"Jordan Peterson", "Naval Ravikant", "James Clear", "Cal Newport", "Tim Ferriss",
		"Elon Musk", "Steve Jobs", "Bruce Lee", "Kobe Bryant", "David Goggins",
		"Sabiduría Samurái", "Bushido", "Ikigai", "Kaizen", "Wabi-Sabi", "Miyamoto Musashi",
	},
	"transformacion": {
		"Invencible", "Imparable", "Inquebrantable", "Mente de Acero", "Frialdad",
		"Control Total", "Poder Mental", "Disciplina", "Resiliencia", "Antifragil",
		"Paz Mental", "Libertad", "Abundancia", "Plenitud", "Felicidad", "Éxito",
		"Victoria", "Triunfo", "Maestría", "Excelencia", "Grandeza", "Legado",
		"Enfoque Láser", "Claridad Mental", "Confianza Brutal", "Propósito Claro",
		"Energía Infinita", "Productividad Máxima", "Flow State", "Modo Dios",
		"Versión Superior", "Nivel Siguiente", "Transformación Total",
	},
	"habitos": {
		"Rutina", "Mañana", "5 AM", "Noche", "Antes de Dormir", "Al Despertar",
		"Ritual Diario", "Sistema", "Protocolo", "Método", "Práctica",
		"Dopamina", "Cerebro", "Enfoque", "Atención", "Concentración", "Willpower",
		"Fuerza de Voluntad", "Mentalidad", "Mindset", "Identidad", "Creencias",
		"Eliminar", "Construir", "Despertar", "Renunciar", "Soltar", "Dejar Ir",
		"Comenzar", "Parar", "Cambiar", "Romper", "Crear", "Destruir",
		"1%", "Kaizen", "Compounding", "Momentum", "Consistencia", "Disciplina Diaria",
		"Pequeños Pasos", "Micro Hábitos", "Hábitos Atómicos", "Progreso Invisible",
	},
}

func pick(bank map[string][]string, key string) string {
	words := bank[key]
	if len(words) == 0 {
		return ""
	}
	return words[rand.Intn(len(words))]
}

package prompt

import "fmt"

const titleYear = 2025

// BuildTechTitles prompts for the SEO/authority variants used on technical
// tutorial channels.
func BuildTechTitles(originalTitle string) string {
	accion := pick(techVocabulary, "accion")
	seguridad := pick(techVocabulary, "seguridad")
	velocidad := pick(techVocabulary, "velocidad")
	autoridad := pick(techVocabulary, "autoridad")

	return fmt.Sprintf(`Actúa como Experto SEO Técnico especializado en tutoriales y soluciones de software.

Genera 3 variantes MEJORADAS de este título para maximizar CTR en audiencia técnica:

Título original: "%s"

BANCO DE VOCABULARIO (Variar siempre):
- Acción: %s, Solucionar, Reparar, Restaurar, Corregir, Eliminar, Quitar, Potenciar
- Seguridad: %s, Sin Formatear, Sin Perder Datos, Método Seguro, Reversible
- Velocidad: %s, Al Instante, En 1 Minuto, Rápido, Express
- Autoridad: %s, Definitivo, Garantizado, 100%% Efectivo, Método %d

LAS 3 VARIANTES OBLIGATORIAS:

Variante A (Autoridad SEO):
- Estructura: [Palabra Clave] + [Acción] + [Promesa de Autoridad]
- Ejemplo: "Windows 11: Solucionar Error X - Método Definitivo 2025"
- Enfoque: Posicionamiento en búsqueda, keywords claras

Variante B (Dolor/Seguridad):
- Estructura: ¿[Problema]? + [Solución] + [Gancho de Seguridad]
- Ejemplo: "¿Error al Iniciar Windows? Repáralo Sin Formatear (Reversible)"
- Enfoque: Resolver dolor específico con promesa de seguridad

Variante C (Velocidad/Impacto):
- Estructura: ¡[Resultado]! + [Contexto] + [Tiempo]
- Ejemplo: "¡PC Lenta? Acelérala al Instante - 3 Pasos Rápidos"
- Enfoque: Resultado inmediato, rapidez

REGLAS ESTRICTAS:
- Máximo 70 caracteres por variante
- Incluye números cuando sea posible (pasos, tiempo, versiones)
- Usa MAYÚSCULAS estratégicamente (1-2 palabras máximo)
- Mantén keywords principales del título original
- Evita clickbait engañoso
- Enfoque: SEO, autoridad, solución técnica

Formato de respuesta (EXACTO):
A: [título variante A]
B: [título variante B]
C: [título variante C]`, originalTitle, accion, seguridad, velocidad, autoridad, titleYear)
}

// BuildGrowthTitles prompts for the emotional/viral variants used on
// personal-development channels.
func BuildGrowthTitles(originalTitle string) string {
	dolor := pick(growthVocabulary, "dolor")
	revelacion := pick(growthVocabulary, "revelacion")
	autoridad := pick(growthVocabulary, "autoridad")
	transformacion := pick(growthVocabulary, "transformacion")
	habito := pick(growthVocabulary, "habitos")

	return fmt.Sprintf(`Actúa como Experto en Psicología Viral y Estoicismo.

Primero, clasifica el tema en: Filosófico, Práctico (Hábitos) o Emocional.

Genera 3 variantes MEJORADAS de este título para maximizar CTR emocional/viral:

Título original: "%s"

BANCO DE VOCABULARIO (Variar siempre):
- Dolor: %s, Vacío, Soledad, Fracaso, Ansiedad, Cansado, Ignorado, Estancado
- Revelación: %s, La Verdad, El Secreto, Lo que nadie te dice, La Mentira
- Autoridad: %s, Marco Aurelio, Séneca, Sabiduría Japonesa, El Monje, La Ciencia
- Transformación: %s, Invencible, Control Total, Mente de Acero, Disciplina
- Hábitos: %s, Rutina, Mañana, 5 AM, Dopamina, Cerebro, Enfoque, Eliminar

LAS 3 VARIANTES OBLIGATORIAS:

Variante A (El Dolor/Negativa):
- Estructura: Por esto sigues siendo [Adjetivo Negativo] (Y cómo evitarlo)
- Ejemplo: "Por esto sigues siendo Débil (Y cómo cambiarlo en Silencio)"
- Enfoque: Confrontar el dolor, identificar el problema emocional

Variante B (La Autoridad/Sabiduría):
- Estructura: La Regla de [Filósofo/Ciencia] que cambiará tu [Beneficio]
- Ejemplo: "La Regla de Marco Aurelio que Transformó mi Mañana"
- Enfoque: Lección antigua, sabiduría probada, autoridad histórica

Variante C (El Hábito/Lista):
- Estructura: X Cosas que debes [Acción] en Silencio
- Ejemplo: "7 Hábitos que Eliminé para Ser Imparable (Dopamina Controlada)"
- Enfoque: Pasos concretos, lista numerada, transformación práctica

REGLAS ESTRICTAS:
- Máximo 70 caracteres por variante
- Usa lenguaje emocional FUERTE (no tibio)
- Prioriza impacto emocional sobre SEO
- Usa números impares (3, 5, 7) en listas
- Paréntesis para detalles impactantes: (Y cómo...), (Sin que nadie...)
- Evita clichés: "cambiar tu vida", "ser exitoso" (usa específicos)

Formato de respuesta (EXACTO):
A: [título variante A]
B: [título variante B]
C: [título variante C]`, originalTitle, dolor, revelacion, autoridad, transformacion, habito)
}

// BuildClassification asks the model to bucket a title as technical or
// viral/emotional content before choosing a prompt.
func BuildClassification(originalTitle string) string {
	return fmt.Sprintf(`Actúa como Experto en Clasificación de Contenido de YouTube.

Analiza este título de video: "%s"

PREGUNTA: ¿De qué tipo es este video?

TIPO A - TÉCNICO:
- Tutoriales de software/hardware
- Solución de errores técnicos
- Instalación/configuración
- Noticias de tecnología/IA/software
- Guías paso a paso
- Reviews técnicos
Ejemplos: "Solucionar Error 0xc00007b", "Instalar GameHub", "ChatGPT: Nuevas Funciones 2025"

TIPO B - VIRAL/EMOCIONAL:
- Motivación/Superación personal
- Psicología/Filosofía
- Estoicismo/Disciplina/Hábitos
- Reflexiones/Pensamientos
- Desarrollo personal
- Mensajes inspiracionales
Ejemplos: "La Regla de Marco Aurelio", "Por esto Fracasas", "Hábitos que Cambiarán tu Vida"

RESPONDE SOLO UNA PALABRA (sin explicaciones):
- "TECNICO" si es del Tipo A
- "VIRAL" si es del Tipo B`, originalTitle)
}

package domain

// Syndrome is the diagnosis engine's top-level classification.
type Syndrome string

const (
	SyndromeFantasma         Syndrome = "FANTASMA"
	SyndromeInvisible        Syndrome = "INVISIBLE"
	SyndromeClickbait        Syndrome = "CLICKBAIT"
	SyndromeSuccess          Syndrome = "SUCCESS"
	SyndromeInsufficientData Syndrome = "INSUFFICIENT_DATA"
)

// Culprit names the asset the diagnosis blames.
type Culprit string

const (
	CulpritTitle     Culprit = "TITULO"
	CulpritThumbnail Culprit = "MINIATURA"
	CulpritCoherence Culprit = "COHERENCIA"
	CulpritNone      Culprit = "NINGUNO"
	CulpritUnknown   Culprit = "DESCONOCIDO"
)

// ImpressionsLevel bands the raw impression count against profile thresholds.
type ImpressionsLevel string

const (
	ImpressionsLow     ImpressionsLevel = "Baja"
	ImpressionsNormal  ImpressionsLevel = "Normal"
	ImpressionsHigh    ImpressionsLevel = "Alta"
	ImpressionsUnknown ImpressionsLevel = "Desconocido"
)

// Diagnosis is derived fresh each checkpoint; exactly one syndrome per
// evaluation, first matching rule wins.
type Diagnosis struct {
	Syndrome         Syndrome
	Culprit          Culprit
	ImpressionsLevel ImpressionsLevel
	Reason           string
	Action           string
}

package domain

// TitleVariants are the three A/B/C replacement titles generated when a
// video's title is implicated in low CTR.
type TitleVariants struct {
	VariantA string `json:"variant_a"`
	VariantB string `json:"variant_b"`
	VariantC string `json:"variant_c"`
}

// Complete reports whether all three variants are present.
func (v TitleVariants) Complete() bool {
	return v.VariantA != "" && v.VariantB != "" && v.VariantC != ""
}

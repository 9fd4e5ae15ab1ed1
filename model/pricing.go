package model

// Cost is the computed price of one request in the registry's currency.
type Cost struct {
	Input  float64
	Output float64
	Total  float64
}

// PriceFor computes the cost of a request: token counts divided by one
// million, multiplied by the per-million price, then by the registry's
// currency-conversion multiplier. Zero tokens cost zero.
func (r *Registry) PriceFor(id string, inputTokens, outputTokens int) (Cost, error) {
	d, err := r.Resolve(id)
	if err != nil {
		return Cost{}, err
	}

	input := float64(inputTokens) / 1_000_000 * d.InputPerMillion * r.fx
	output := float64(outputTokens) / 1_000_000 * d.OutputPerMillion * r.fx

	return Cost{
		Input:  input,
		Output: output,
		Total:  input + output,
	}, nil
}

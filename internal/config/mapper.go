package config

// apply overlays every field set in dto onto base and returns the result.
func (dto inputsDTO) apply(base Inputs) Inputs {
	out := base

	if d := dto.TwoSum; d != nil {
		setSlice(&out.TwoSum.Nums, d.Nums)
		setPtr(&out.TwoSum.Target, d.Target)
	}
	setPtr(&out.Sentence, dto.Sentence)
	setPtr(&out.Factorial, dto.Factorial)
	if d := dto.Rotate; d != nil {
		setSlice(&out.Rotate.Nums, d.Nums)
		setPtr(&out.Rotate.By, d.By)
	}
	setPtr(&out.Reverse, dto.Reverse)
	if d := dto.Common; d != nil {
		setSlice(&out.Common.A, d.A)
		setSlice(&out.Common.B, d.B)
	}
	setPtr(&out.FirstNonRepeated, dto.FirstNonRepeated)
	if d := dto.Person; d != nil {
		setPtr(&out.Person.ID, d.ID)
		setPtr(&out.Person.Name, d.Name)
	}
	setSlice(&out.Leaders, dto.Leaders)
	setSlice(&out.MostCommon, dto.MostCommon)
	setSlice(&out.Dedup, dto.Dedup)
	setPtr(&out.DedupWords, dto.DedupWords)
	setPtr(&out.ReverseAlphabets, dto.ReverseAlphabets)
	setSlice(&out.SecondLargest, dto.SecondLargest)
	setPtr(&out.CountChars, dto.CountChars)
	setPtr(&out.Palindrome, dto.Palindrome)
	setSlice(&out.Max, dto.Max)
	setPtr(&out.Greeting, dto.Greeting)
	if d := dto.Concat; d != nil {
		setSlice(&out.Concat.A, d.A)
		setSlice(&out.Concat.B, d.B)
	}
	if d := dto.Merge; d != nil {
		// a map given in the file replaces the default map wholesale
		if d.A != nil {
			out.Merge.A = d.A
		}
		if d.B != nil {
			out.Merge.B = d.B
		}
	}
	return out
}

func setPtr[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// setSlice replaces dst when the file listed the key, even with an empty
// sequence; yaml leaves absent keys nil.
func setSlice[T any](dst *[]T, src []T) {
	if src != nil {
		*dst = src
	}
}

package config

// inputsDTO mirrors the YAML file. Every field is optional: nil means "keep
// the default".
type inputsDTO struct {
	TwoSum           *twoSumDTO `yaml:"two_sum"`
	Sentence         *string    `yaml:"sentence"`
	Factorial        *int       `yaml:"factorial"`
	Rotate           *rotateDTO `yaml:"rotate"`
	Reverse          *string    `yaml:"reverse"`
	Common           *pairDTO   `yaml:"common"`
	FirstNonRepeated *string    `yaml:"first_non_repeated"`
	Person           *personDTO `yaml:"person"`
	Leaders          []int      `yaml:"leaders"`
	MostCommon       []int      `yaml:"most_common"`
	Dedup            []int      `yaml:"dedup"`
	DedupWords       *string    `yaml:"dedup_words"`
	ReverseAlphabets *string    `yaml:"reverse_alphabets"`
	SecondLargest    []int      `yaml:"second_largest"`
	CountChars       *string    `yaml:"count_chars"`
	Palindrome       *string    `yaml:"palindrome"`
	Max              []int      `yaml:"max"`
	Greeting         *string    `yaml:"greeting"`
	Concat           *pairDTO   `yaml:"concat"`
	Merge            *mergeDTO  `yaml:"merge"`
}

type twoSumDTO struct {
	Nums   []int `yaml:"nums"`
	Target *int  `yaml:"target"`
}

type rotateDTO struct {
	Nums []int `yaml:"nums"`
	By   *int  `yaml:"by"`
}

type pairDTO struct {
	A []int `yaml:"a"`
	B []int `yaml:"b"`
}

type personDTO struct {
	ID   *int    `yaml:"id"`
	Name *string `yaml:"name"`
}

type mergeDTO struct {
	A map[string]string `yaml:"a"`
	B map[string]string `yaml:"b"`
}

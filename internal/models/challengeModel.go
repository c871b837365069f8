package models

import "encoding/json"

// TestCase input/output come back from the model as strings or numbers,
// so both sides stay raw until a consumer needs them.
type TestCase struct {
	Input  json.RawMessage `json:"input"`
	Output json.RawMessage `json:"output"`
}

// Challenge is a generated coding-practice problem.
type Challenge struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TestCases   []TestCase `json:"testCases"`
	Explanation string     `json:"explanation"`
}

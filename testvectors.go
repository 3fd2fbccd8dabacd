package dyckprng

import (
	"encoding/json"
	"fmt"
	"os"
)

// TestVector is a worked example of the cycle-lemma rotation: a fixed
// arrangement of n up steps and n+1 down steps and the Dyck path it maps to.
type TestVector struct {
	Name        string `json:"name"`
	Arrangement string `json:"arrangement"` // 2n+1 bits as '0'/'1'
	MinIndex    int    `json:"min_index"`   // first index of the global minimum
	Expected    string `json:"expected"`    // resulting 2n-bit Dyck path
}

// TestVectorSuite contains all test vectors with metadata about their source.
type TestVectorSuite struct {
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Vectors     []TestVector `json:"vectors"`
}

// LoadTestVectors loads test vectors from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadTestVectors(path string) (*TestVectorSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test vectors: %w", err)
	}

	var suite TestVectorSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse test vectors: %w", err)
	}

	return &suite, nil
}

// GetArrangement returns the decoded arrangement. It must hold one more
// down step than up steps.
func (tv *TestVector) GetArrangement() (Path, error) {
	p, err := ParsePath(tv.Arrangement)
	if err != nil {
		return nil, fmt.Errorf("invalid arrangement: %w", err)
	}
	if len(p)%2 != 1 || 2*p.Ones()+1 != len(p) {
		return nil, fmt.Errorf("arrangement %q must hold n ones and n+1 zeros", tv.Arrangement)
	}
	return p, nil
}

// GetExpected returns the decoded expected Dyck path.
func (tv *TestVector) GetExpected() (Path, error) {
	p, err := ParsePath(tv.Expected)
	if err != nil {
		return nil, fmt.Errorf("invalid expected path: %w", err)
	}
	return p, nil
}

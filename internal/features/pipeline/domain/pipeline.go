package domain

import (
	"bytes"
	"encoding/json"
)

// Stage names a step of a pipeline run.
type Stage string

const (
	StageIdle           Stage = "IDLE"
	StageClarifying     Stage = "CLARIFYING"
	StageDecomposing    Stage = "DECOMPOSING"
	StageParsing        Stage = "PARSING"
	StageGeneratingCode Stage = "GENERATING_CODE"
	StageAggregating    Stage = "AGGREGATING"
	StageDone           Stage = "DONE"
)

// RunRequest is the body accepted by the pipeline API.
type RunRequest struct {
	Requirements string `json:"requirements" form:"requirements"`
}

// StageEvent carries the output of a finished stage.
type StageEvent struct {
	RunID string `json:"run_id"`
	Stage Stage  `json:"stage"`
	// Index is the 1-based story position during GENERATING_CODE.
	Index   int      `json:"index,omitempty"`
	Story   string   `json:"story,omitempty"`
	Stories []string `json:"stories,omitempty"`
	Output  string   `json:"output,omitempty"`
}

// Generation is one code-generation attempt, keyed by story position.
type Generation struct {
	Index int    `json:"index"`
	Story string `json:"story"`
	Code  string `json:"code"`
}

// Result is what a completed run hands to the presentation layer.
type Result struct {
	RunID                 string       `json:"run_id"`
	ClarifiedRequirements string       `json:"clarified_requirements"`
	UserStories           []string     `json:"user_stories"`
	CodeSnippets          *SnippetMap  `json:"code_snippets"`
	Generations           []Generation `json:"generations"`
	FinalCode             string       `json:"final_code"`
}

// SnippetMap maps story text to generated code, remembering insertion order.
// Setting a story that is already present replaces its code in place, so
// identical stories collapse into one entry.
type SnippetMap struct {
	keys   []string
	values map[string]string
}

func NewSnippetMap() *SnippetMap {
	return &SnippetMap{values: make(map[string]string)}
}

func (m *SnippetMap) Set(story, code string) {
	if _, ok := m.values[story]; !ok {
		m.keys = append(m.keys, story)
	}
	m.values[story] = code
}

func (m *SnippetMap) Get(story string) (string, bool) {
	code, ok := m.values[story]
	return code, ok
}

func (m *SnippetMap) Len() int { return len(m.keys) }

// Stories returns the keys in insertion order.
func (m *SnippetMap) Stories() []string {
	return append([]string(nil), m.keys...)
}

// Values returns the code snippets in insertion order.
func (m *SnippetMap) Values() []string {
	out := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

// MarshalJSON encodes the map as a JSON object with keys in insertion order.
func (m *SnippetMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

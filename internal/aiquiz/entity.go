package aiquiz

import "encoding/json"

// Question is the object the prompt asks the model to produce. The pipeline
// passes the model output through as-is, so this type is only the intended
// shape; see shape.go for the opt-in check.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      int      `json:"answer"`
	Explanation string   `json:"explanation"`
}

// QuestionRequest fields are opaque: any JSON value is accepted and only its
// truthiness is checked.
type QuestionRequest struct {
	Assunto     any `json:"assunto"`
	Materia     any `json:"materia"`
	Estilo      any `json:"estilo"`
	Dificuldade any `json:"dificuldade"`
}

// UnmarshalJSON reads the four keys by exact name. The default decoder would
// also accept "ASSUNTO" or "Materia".
func (r *QuestionRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*r = QuestionRequest{
		Assunto:     fields["assunto"],
		Materia:     fields["materia"],
		Estilo:      fields["estilo"],
		Dificuldade: fields["dificuldade"],
	}
	return nil
}

func (r QuestionRequest) Complete() bool {
	return truthy(r.Assunto) && truthy(r.Materia) && truthy(r.Estilo) && truthy(r.Dificuldade)
}

// truthy treats null, false, "" and 0 as absent, matching what the browser
// client has always relied on.
func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	default:
		return true
	}
}

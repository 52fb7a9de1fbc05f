package aiquiz

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const promptTemplate = `Gere UMA única questão de múltipla escolha sobre o assunto "%s", dentro da matéria de "%s", no estilo de prova "%s" e com nível de dificuldade "%s". ` +
	`A resposta DEVE ser um objeto JSON válido, e NADA MAIS além do JSON. ` +
	`A estrutura do JSON deve ser exatamente a seguinte: { "question": "o enunciado completo da pergunta", "options": ["alternativa 1", "alternativa 2", "alternativa 3", "alternativa 4"], "answer": 0, "explanation": "uma explicação detalhada e clara da resposta correta." }. ` +
	`O campo "answer" deve ser o índice (de 0 a 3) da alternativa correta no array "options".`

func BuildPrompt(req QuestionRequest) string {
	return fmt.Sprintf(promptTemplate,
		promptValue(req.Assunto),
		promptValue(req.Materia),
		promptValue(req.Estilo),
		promptValue(req.Dificuldade),
	)
}

// promptValue renders a request field the way a JavaScript template literal
// would: strings verbatim, numbers in JS notation, arrays joined by commas.
func promptValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return jsNumber(v)
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			if item != nil {
				items[i] = promptValue(item)
			}
		}
		return strings.Join(items, ",")
	case map[string]any:
		return "[object Object]"
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

// jsNumber formats like Number.prototype.toString: plain digits between 1e-6
// and 1e21, exponent form with no zero padding outside that range.
func jsNumber(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		s = strings.Replace(s, "e+0", "e+", 1)
		return strings.Replace(s, "e-0", "e-", 1)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

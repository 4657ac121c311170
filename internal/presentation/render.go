package presentation

import (
	"bytes"
	"html/template"

	"github.com/GriffinCanCode/utilkit/internal/providers/calculator"
	"github.com/GriffinCanCode/utilkit/internal/providers/formatter"
)

// TimeLayout renders result timestamps as a wall-clock time
const TimeLayout = "3:04:05 PM"

// UnknownErrorMessage is shown when an error carries no message
const UnknownErrorMessage = "An unknown error occurred"

var cards = template.Must(template.New("cards").Parse(`
{{- define "calculation" -}}
<div class="result-label">Calculation Result</div>
<div class="result-value">{{.Result}}</div>
<div class="result-details">
  <strong>Operation:</strong> {{.Operation}}<br>
  <strong>Expression:</strong> {{.Expression}}<br>
  <strong>Time:</strong> {{.Time}}
</div>
{{- end -}}

{{- define "format" -}}
<div class="result-label">Formatted Text</div>
<div class="result-value">{{.Formatted}}</div>
{{- if .HasMetadata}}
<div class="result-details">
  <strong>Character Count:</strong> {{.CharacterCount}}<br>
  <strong>Word Count:</strong> {{.WordCount}}<br>
  {{- with .Truncated}}
  <strong>Truncated:</strong> {{.}}<br>
  {{- end}}
</div>
{{- end}}
<div class="result-details">
  <strong>Operation:</strong> {{.Operation}}<br>
  <strong>Original:</strong> {{.Original}}
</div>
{{- end -}}

{{- define "error" -}}
<div class="result-label">Error</div>
<div class="error">{{.}}</div>
{{- end -}}
`))

type calculationView struct {
	Result     string
	Operation  string
	Expression string
	Time       string
}

// RenderCalculation renders a calculation result card
func RenderCalculation(res *calculator.CalculationResult) (string, error) {
	return execute("calculation", calculationView{
		Result:     calculator.FormatNumber(res.Result),
		Operation:  res.Operation,
		Expression: res.Expression,
		Time:       res.Timestamp.Format(TimeLayout),
	})
}

type formatView struct {
	Formatted      string
	Original       string
	Operation      string
	HasMetadata    bool
	CharacterCount int
	WordCount      int
	Truncated      string
}

// RenderFormat renders a formatted text card. Input and output are escaped.
func RenderFormat(res *formatter.FormatResult) (string, error) {
	view := formatView{
		Formatted: res.Formatted,
		Original:  res.Original,
		Operation: res.Operation,
	}
	if m := res.Metadata; m != nil {
		view.HasMetadata = true
		view.CharacterCount = m.CharacterCount
		view.WordCount = m.WordCount
		if m.Truncated != nil {
			view.Truncated = "No"
			if *m.Truncated {
				view.Truncated = "Yes"
			}
		}
	}
	return execute("format", view)
}

// RenderError renders an error card
func RenderError(message string) (string, error) {
	if message == "" {
		message = UnknownErrorMessage
	}
	return execute("error", message)
}

func execute(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := cards.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

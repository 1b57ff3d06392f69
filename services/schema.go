package services

import (
	"github.com/invopop/jsonschema"

	"aging_curve/models"
)

// analysisSchema 由 AnalysisResult 反射得到的 JSON schema，用于约束输出
var analysisSchema = func() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return r.Reflect(models.AnalysisResult{})
}()

const (
	analysisSchemaName        = "aging_curve_analysis"
	analysisSchemaDescription = "Four-section life fortune analysis"
)

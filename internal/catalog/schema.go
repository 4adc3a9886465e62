package catalog

// catalogSchema is the JSON schema for catalog content files. Content is
// validated against it before the stricter semantic checks in Validate.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"quizzes": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":   map[string]any{"type": "string", "minLength": 1},
					"subject": map[string]any{"type": "string"},
					"topic":   map[string]any{"type": "string"},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []any{"beginner", "intermediate", "advanced"},
					},
					"estimated_minutes": map[string]any{
						"type":    "integer",
						"minimum": 1,
					},
					"questions": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":      map[string]any{"type": "string", "minLength": 1},
								"content": map[string]any{"type": "string", "minLength": 1},
								"options": map[string]any{
									"type":  "array",
									"items": map[string]any{"type": "string"},
								},
								"correct_answer": map[string]any{"type": "string", "minLength": 1},
								"hints": map[string]any{
									"type":  "array",
									"items": map[string]any{"type": "string"},
								},
							},
							"required":             []any{"id", "content", "correct_answer"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"title", "subject", "topic", "difficulty", "estimated_minutes", "questions"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"quizzes"},
	"additionalProperties": false,
}

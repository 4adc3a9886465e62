package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/learner"
)

//go:embed content/quizzes.json
var embeddedContent []byte

// quizFile mirrors the catalog content file layout.
type quizFile struct {
	Quizzes []quizData `json:"quizzes"`
}

type quizData struct {
	Title            string         `json:"title"`
	Subject          string         `json:"subject"`
	Topic            string         `json:"topic"`
	Difficulty       string         `json:"difficulty"`
	EstimatedMinutes int            `json:"estimated_minutes"`
	Questions        []questionData `json:"questions"`
}

type questionData struct {
	ID            string   `json:"id"`
	Content       string   `json:"content"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Hints         []string `json:"hints"`
}

// LoadEmbedded parses and validates the embedded catalog content, returning
// a ready provider. Fails if the content does not match the schema or
// violates a quiz invariant.
func LoadEmbedded() (*StaticProvider, error) {
	quizzes, err := parseContent(embeddedContent)
	if err != nil {
		return nil, fmt.Errorf("load embedded catalog: %w", err)
	}
	return NewStaticProvider(quizzes), nil
}

func parseContent(raw []byte) ([]Quiz, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var file quizFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}

	quizzes := make([]Quiz, 0, len(file.Quizzes))
	for _, qd := range file.Quizzes {
		diff, err := learner.ParseDifficulty(qd.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("quiz %q: %w", qd.Title, err)
		}
		quiz := Quiz{
			Title:            qd.Title,
			Subject:          qd.Subject,
			Topic:            qd.Topic,
			Difficulty:       diff,
			EstimatedMinutes: qd.EstimatedMinutes,
		}
		for _, question := range qd.Questions {
			quiz.Questions = append(quiz.Questions, Question{
				ID:            question.ID,
				Content:       question.Content,
				Options:       question.Options,
				CorrectAnswer: question.CorrectAnswer,
				Hints:         question.Hints,
			})
		}
		if err := quiz.Validate(); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, quiz)
	}
	return quizzes, nil
}

// validateSchema checks raw content bytes against the catalog schema.
func validateSchema(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("content schema validation failed: %w", err)
	}
	return nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value, not raw bytes.
	defBytes, err := json.Marshal(catalogSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse catalog schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://quiz-catalog.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	return compiled, nil
}

package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// TopicResponse is a syllabus topic.
// @Description Syllabus topic
type TopicResponse struct {
	Name       string `json:"name" example:"Backpropagation"`
	Difficulty string `json:"difficulty" example:"Hard"`
	Selected   bool   `json:"selected"`
}

// UnitResponse groups topics under a unit heading.
type UnitResponse struct {
	Name   string          `json:"name" example:"UNIT-I"`
	Topics []TopicResponse `json:"topics"`
}

// SyllabusResponse lists all units in syllabus order.
type SyllabusResponse struct {
	Units []UnitResponse `json:"units"`
}

// QuestionResponse is one question of the working list.
// @Description Question in the working list
type QuestionResponse struct {
	Number     int    `json:"number" example:"1"`
	ID         string `json:"id" example:"01J0Z8Q3V6M3T5W1B2C4D6E8F0"`
	Text       string `json:"text"`
	Topic      string `json:"topic,omitempty" example:"Backpropagation"`
	Difficulty string `json:"difficulty" example:"Hard"`
	Marks      int    `json:"marks" example:"5"`
}

// PaperMetaResponse is the fixed paper header.
type PaperMetaResponse struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Duration string `json:"duration"`
}

// PaperStateResponse is the full workspace state of the caller's session.
// @Description Workspace state
type PaperStateResponse struct {
	Page           string             `json:"page" example:"review"`
	SelectedTopics []TopicResponse    `json:"selected_topics"`
	Questions      []QuestionResponse `json:"questions"`
	TotalMarks     int                `json:"total_marks" example:"25"`
	Loading        bool               `json:"loading"`
	Meta           PaperMetaResponse  `json:"meta"`
}

// ToggleTopicRequest names the topic to add to or remove from the selection.
type ToggleTopicRequest struct {
	Topic string `json:"topic" form:"topic" example:"Backpropagation"`
}

// UpdateQuestionRequest edits a question. Omitted fields are left alone.
// @Description Question edit
type UpdateQuestionRequest struct {
	Text  *string     `json:"text,omitempty"`
	Marks *MarksInput `json:"marks,omitempty" swaggertype:"string" example:"10"`
}

// MarksInput is raw marks input. A JSON string is kept as typed and parsed
// by the workspace; a JSON number is truncated to its integer value first,
// so 1e2 means 100 and 7.9 means 7.
type MarksInput string

func (m *MarksInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = MarksInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("marks must be a string or number: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*m = MarksInput(strconv.FormatInt(i, 10))
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		// Beyond float64 range; the workspace treats overflow as 0.
		*m = "0"
		return nil
	}
	*m = MarksInput(strconv.FormatFloat(math.Trunc(f), 'f', 0, 64))
	return nil
}

// MarksString returns the raw marks or nil when omitted.
func (r UpdateQuestionRequest) MarksString() *string {
	if r.Marks == nil {
		return nil
	}
	s := string(*r.Marks)
	return &s
}

// CopyRequest reports whether the browser offers the asynchronous
// clipboard API.
type CopyRequest struct {
	ClipboardAPI bool `json:"clipboard_api"`
}

// ClipboardResponse is the text the client must place on its clipboard.
type ClipboardResponse struct {
	Text   string `json:"text"`
	Legacy bool   `json:"legacy"`
}

// CopyResponse is the result of a copy request.
type CopyResponse struct {
	Copied    bool               `json:"copied"`
	Notice    string             `json:"notice,omitempty" example:"Copied to clipboard!"`
	NoticeTTL int64              `json:"notice_ttl_ms,omitempty" example:"2000"`
	Clipboard *ClipboardResponse `json:"clipboard,omitempty"`
}

// TranscriptResponse carries the plain-text paper.
type TranscriptResponse struct {
	Transcript string `json:"transcript"`
}

// ErrorResponse is the body of every API error.
// HealthResponse reports readiness. Cache is "ok", "unavailable" or
// "disabled" when sessions live in memory only.
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Cache    string `json:"cache" example:"ok"`
	Sessions int    `json:"sessions" example:"3"`
}

type ErrorResponse struct {
	Code    string      `json:"code" example:"INVALID_TRANSITION"`
	Message string      `json:"message"`
	Status  int         `json:"status" example:"409"`
	Errors  interface{} `json:"errors,omitempty" swaggertype:"object"`
}

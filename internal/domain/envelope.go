package domain

import "encoding/json"

// Envelope is the tagged outcome of one fetch. Success selects which fields are meaningful:
// Data/Total/Page/Limit on success, Message/Status on failure.
type Envelope struct {
	Success bool        `json:"success"`
	Data    []JobRecord `json:"data,omitempty"`
	Total   int         `json:"total,omitempty"`
	Page    int         `json:"page,omitempty"`
	Limit   int         `json:"limit,omitempty"`
	Message string      `json:"message,omitempty"`
	Status  int         `json:"status,omitempty"`
}

type successWire struct {
	Success bool        `json:"success"`
	Data    []JobRecord `json:"data"`
	Total   int         `json:"total"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
}

type failureWire struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// MarshalJSON emits only the fields of the active variant
func (e Envelope) MarshalJSON() ([]byte, error) {
	if e.Success {
		data := e.Data
		if data == nil {
			data = []JobRecord{}
		}
		return json.Marshal(successWire{Success: true, Data: data, Total: e.Total, Page: e.Page, Limit: e.Limit})
	}
	return json.Marshal(failureWire{Message: e.Message, Status: e.Status})
}

// Succeeded builds a success envelope
func Succeeded(data []JobRecord, total, page, limit int) Envelope {
	if data == nil {
		data = []JobRecord{}
	}
	return Envelope{
		Success: true,
		Data:    data,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}
}

// Failed builds a failure envelope
func Failed(message string, status int) Envelope {
	return Envelope{
		Success: false,
		Message: message,
		Status:  status,
	}
}

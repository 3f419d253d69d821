package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeProcessFinalized  = "process.finalized"
	EventTypeDocumentGenerated = "document.generated"
	EventTypeReportSent        = "report.sent"
)

type ProcessFinalizedEvent struct {
	BaseEvent
	ProcessID  int64  `json:"process_id"`
	EmployeeID int64  `json:"employee_id"`
	Decision   string `json:"decision"`
	Resolution string `json:"resolution"`
	UserID     int64  `json:"user_id"`
}

func NewProcessFinalizedEvent(processID, employeeID int64, decision, resolution string, userID int64) *ProcessFinalizedEvent {
	return &ProcessFinalizedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeProcessFinalized,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"process_id":  processID,
				"employee_id": employeeID,
				"decision":    decision,
				"resolution":  resolution,
				"user_id":     userID,
			},
		},
		ProcessID:  processID,
		EmployeeID: employeeID,
		Decision:   decision,
		Resolution: resolution,
		UserID:     userID,
	}
}

type DocumentGeneratedEvent struct {
	BaseEvent
	ProcessID    int64  `json:"process_id"`
	DocumentType string `json:"document_type"`
	UserID       int64  `json:"user_id"`
}

func NewDocumentGeneratedEvent(processID int64, documentType string, userID int64) *DocumentGeneratedEvent {
	return &DocumentGeneratedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeDocumentGenerated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"process_id":    processID,
				"document_type": documentType,
				"user_id":       userID,
			},
		},
		ProcessID:    processID,
		DocumentType: documentType,
		UserID:       userID,
	}
}

type ReportSentEvent struct {
	BaseEvent
	ProcessID  int64    `json:"process_id"`
	Recipients []string `json:"recipients"`
	Transport  string   `json:"transport"`
	UserID     int64    `json:"user_id"`
}

func NewReportSentEvent(processID int64, recipients []string, transport string, userID int64) *ReportSentEvent {
	return &ReportSentEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeReportSent,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"process_id": processID,
				"recipients": recipients,
				"transport":  transport,
				"user_id":    userID,
			},
		},
		ProcessID:  processID,
		Recipients: recipients,
		Transport:  transport,
		UserID:     userID,
	}
}

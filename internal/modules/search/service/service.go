package service

import (
	"encoding/json"
	"log"

	"anoa.com/binbeacon/internal/entity"
	"github.com/meilisearch/meilisearch-go"
)

const reportIndex = "overflow_reports"

// ReportSearchService indexes overflow reports for the authority dashboard
// search. All operations are best-effort: indexing failures are logged, never
// propagated into the report workflow.
type ReportSearchService interface {
	IndexReport(report *entity.OverflowReport) error
	DeleteReport(id string) error
	Search(query string) ([]ReportDoc, error)
}

type ReportDoc struct {
	ID           string `json:"id"`
	ResidentID   string `json:"resident_id"`
	OverflowType string `json:"overflow_type"`
	Remarks      string `json:"remarks"`
	Address      string `json:"address"`
	Status       string `json:"status"`
	ReportedAt   int64  `json:"reported_at"`
}

type reportSearchService struct {
	client meilisearch.ServiceManager
}

func NewReportSearchService(client meilisearch.ServiceManager) ReportSearchService {
	s := &reportSearchService{client: client}
	s.initIndex()
	return s
}

func (s *reportSearchService) initIndex() {
	filterable := []string{"status", "overflow_type"}
	filterableInterface := make([]any, len(filterable))
	for i, v := range filterable {
		filterableInterface[i] = v
	}
	if _, err := s.client.Index(reportIndex).UpdateFilterableAttributes(&filterableInterface); err != nil {
		log.Printf("Failed to update %s filterable attributes: %v", reportIndex, err)
	}

	sortable := []string{"reported_at"}
	if _, err := s.client.Index(reportIndex).UpdateSortableAttributes(&sortable); err != nil {
		log.Printf("Failed to update %s sortable attributes: %v", reportIndex, err)
	}
}

func (s *reportSearchService) IndexReport(report *entity.OverflowReport) error {
	doc := ReportDoc{
		ID:           report.ID.String(),
		ResidentID:   report.ResidentID.String(),
		OverflowType: report.OverflowType,
		Remarks:      report.Remarks,
		Address:      report.Address,
		Status:       report.Status,
		ReportedAt:   report.ReportedAt.Unix(),
	}

	task, err := s.client.Index(reportIndex).AddDocuments([]ReportDoc{doc}, strPtr("id"))
	if err != nil {
		return err
	}

	log.Printf("Indexed overflow report %s, task id: %d", report.ID, task.TaskUID)
	return nil
}

func (s *reportSearchService) DeleteReport(id string) error {
	_, err := s.client.Index(reportIndex).DeleteDocument(id)
	return err
}

func (s *reportSearchService) Search(query string) ([]ReportDoc, error) {
	res, err := s.client.Index(reportIndex).Search(query, &meilisearch.SearchRequest{
		Limit: 50,
		Sort:  []string{"reported_at:desc"},
	})
	if err != nil {
		return nil, err
	}

	// Hits come back untyped; round-trip through JSON to get docs.
	raw, err := json.Marshal(res.Hits)
	if err != nil {
		return nil, err
	}

	var docs []ReportDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

func strPtr(s string) *string {
	return &s
}

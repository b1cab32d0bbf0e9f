package consolesdk

import (
	"context"
	"errors"
	"net/http"
)

// DefaultAnomalyDataType is used by AnomalyDetection when no type is given.
const DefaultAnomalyDataType = "financial"

// AIAPI covers the AI-assisted extraction and analysis endpoints.
type AIAPI struct {
	r Requester
}

// ExtractDocumentData uploads one document for extraction. extractionType
// selects the processing mode, e.g. "invoice".
func (a *AIAPI) ExtractDocumentData(ctx context.Context, doc Document, extractionType string) (Record, error) {
	body, err := NewMultipartBody(
		map[string]string{"extraction_type": extractionType},
		FormFile{Field: "file", Document: doc},
	)
	if err != nil {
		return nil, err
	}

	return call[Record](ctx, a.r, &Request{
		Method: http.MethodPost,
		Path:   "/ai/document-extraction",
		Body:   body,
	})
}

// BatchProcessDocuments uploads several documents in one request.
func (a *AIAPI) BatchProcessDocuments(ctx context.Context, docs []Document, extractionType string) (Record, error) {
	if len(docs) == 0 {
		return nil, errors.New("consolesdk: batch processing needs at least one document")
	}

	files := make([]FormFile, 0, len(docs))
	for _, doc := range docs {
		files = append(files, FormFile{Field: "files", Document: doc})
	}

	body, err := NewMultipartBody(map[string]string{"extraction_type": extractionType}, files...)
	if err != nil {
		return nil, err
	}

	return call[Record](ctx, a.r, &Request{
		Method: http.MethodPost,
		Path:   "/ai/document-batch-processing",
		Body:   body,
	})
}

// GSTReconciliation reconciles a client's GST data for period.
func (a *AIAPI) GSTReconciliation(ctx context.Context, clientID int64, period string) (Record, error) {
	return a.post(ctx, "/ai/gst-reconciliation", struct {
		ClientID int64  `json:"client_id"`
		Period   string `json:"period"`
	}{clientID, period})
}

// TDSReconciliation reconciles a client's TDS data for quarter.
func (a *AIAPI) TDSReconciliation(ctx context.Context, clientID int64, quarter string) (Record, error) {
	return a.post(ctx, "/ai/tds-reconciliation", struct {
		ClientID int64  `json:"client_id"`
		Quarter  string `json:"quarter"`
	}{clientID, quarter})
}

// ComplianceMonitoring runs compliance checks. A nil clientID or empty
// complianceType leaves the field out so the server applies its default.
func (a *AIAPI) ComplianceMonitoring(ctx context.Context, clientID *int64, complianceType string) (Record, error) {
	return a.post(ctx, "/ai/compliance-monitoring", struct {
		ClientID       *int64 `json:"client_id,omitempty"`
		ComplianceType string `json:"compliance_type,omitempty"`
	}{clientID, complianceType})
}

// Accuracy returns extraction accuracy statistics.
func (a *AIAPI) Accuracy(ctx context.Context) (Record, error) {
	return call[Record](ctx, a.r, &Request{
		Method: http.MethodGet,
		Path:   "/ai/ai-accuracy",
	})
}

// SmartCategorization suggests ledger categories for transaction.
func (a *AIAPI) SmartCategorization(ctx context.Context, transaction Record) (Record, error) {
	return a.post(ctx, "/ai/smart-categorization", transaction)
}

// AnomalyDetection scans a client's data of dataType, DefaultAnomalyDataType
// when empty.
func (a *AIAPI) AnomalyDetection(ctx context.Context, clientID int64, dataType string) (Record, error) {
	if dataType == "" {
		dataType = DefaultAnomalyDataType
	}
	return a.post(ctx, "/ai/anomaly-detection", struct {
		ClientID int64  `json:"client_id"`
		DataType string `json:"data_type"`
	}{clientID, dataType})
}

func (a *AIAPI) post(ctx context.Context, path string, body any) (Record, error) {
	return call[Record](ctx, a.r, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

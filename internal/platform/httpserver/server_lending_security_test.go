package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	lendinghttp "tokentab/contexts/finance-core/lending-ledger-service/transport/http"
)

func createRecord(t *testing.T, server *Server, token string, personName string, initialTokens int64) lendinghttp.LendingRecordDTO {
	t.Helper()

	body := `{"person_name":"` + personName + `","initial_tokens":` + itoa(initialTokens) + `}`
	rr := doJSON(t, server, http.MethodPost, "/api/lending/v1/records", token, body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("creating record failed: %d body=%s", rr.Code, rr.Body.String())
	}

	var dto lendinghttp.LendingRecordDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decoding record failed: %v", err)
	}
	return dto
}

func itoa(value int64) string {
	data, _ := json.Marshal(value)
	return string(data)
}

func TestLendingEndpointsRequireSession(t *testing.T) {
	server := newTestServer()

	paths := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/lending/v1/records", ""},
		{http.MethodPost, "/api/lending/v1/records", `{"person_name":"Alice"}`},
		{http.MethodGet, "/api/lending/v1/users/user-lender-1/records", ""},
		{http.MethodPost, "/api/lending/v1/records/record-1/lend", `{"token_count":1}`},
		{http.MethodPost, "/api/lending/v1/records/record-1/settle", `{"token_count":1}`},
		{http.MethodPost, "/api/lending/v1/records/record-1/accept", ""},
	}
	for _, item := range paths {
		rr := doJSON(t, server, item.method, item.path, "", item.body)
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d body=%s", item.method, item.path, rr.Code, rr.Body.String())
		}
	}
}

func TestForeignLedgerIsForbidden(t *testing.T) {
	server := newTestServer()
	lenderToken := signIn(t, server, "lender@tokentab.dev", "lender-password")
	friendToken := signIn(t, server, "friend@tokentab.dev", "friend-password")

	createRecord(t, server, lenderToken, "Alice", 3)

	rr := doJSON(t, server, http.MethodGet, "/api/lending/v1/users/user-lender-1/records", friendToken, "")
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAdminCanReadForeignLedger(t *testing.T) {
	server := newTestServer()
	lenderToken := signIn(t, server, "lender@tokentab.dev", "lender-password")
	adminToken := signIn(t, server, "admin@tokentab.dev", "admin-password")

	createRecord(t, server, lenderToken, "Alice", 3)

	rr := doJSON(t, server, http.MethodGet, "/api/lending/v1/users/user-lender-1/records", adminToken, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp lendinghttp.ListRecordsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response failed: %v", err)
	}
	if len(resp.Records) != 1 || resp.Records[0].PersonName != "Alice" {
		t.Fatalf("unexpected records: %+v", resp.Records)
	}
}

func TestForeignMutationIsForbidden(t *testing.T) {
	server := newTestServer()
	lenderToken := signIn(t, server, "lender@tokentab.dev", "lender-password")
	friendToken := signIn(t, server, "friend@tokentab.dev", "friend-password")

	record := createRecord(t, server, lenderToken, "Alice", 3)

	rr := doJSON(t, server, http.MethodPost, "/api/lending/v1/records/"+record.RecordID+"/lend", friendToken, `{"token_count":1}`)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestLendSettleAcceptFlow(t *testing.T) {
	server := newTestServer()
	token := signIn(t, server, "lender@tokentab.dev", "lender-password")

	record := createRecord(t, server, token, "Alice", 2)
	if record.StatusLabel != "Awaiting acceptance" {
		t.Fatalf("expected pending label, got %q", record.StatusLabel)
	}

	rr := doJSON(t, server, http.MethodPost, "/api/lending/v1/records/"+record.RecordID+"/lend", token, `{"token_count":5}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("lend failed: %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPost, "/api/lending/v1/records/"+record.RecordID+"/settle", token, `{"token_count":4}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("settle failed: %d body=%s", rr.Code, rr.Body.String())
	}

	var updated lendinghttp.LendingRecordDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decoding record failed: %v", err)
	}
	if updated.TokenCount != 3 || updated.TotalTokensLent != 7 {
		t.Fatalf("unexpected balances: %+v", updated)
	}

	rr = doJSON(t, server, http.MethodPost, "/api/lending/v1/records/"+record.RecordID+"/accept", token, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("accept failed: %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPost, "/api/lending/v1/records/"+record.RecordID+"/accept", token, "")
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 for repeated accept, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSettleBeyondBalanceIsRejected(t *testing.T) {
	server := newTestServer()
	token := signIn(t, server, "lender@tokentab.dev", "lender-password")

	record := createRecord(t, server, token, "Alice", 2)

	rr := doJSON(t, server, http.MethodPost, "/api/lending/v1/records/"+record.RecordID+"/settle", token, `{"token_count":3}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestUnknownRecordIs404(t *testing.T) {
	server := newTestServer()
	token := signIn(t, server, "lender@tokentab.dev", "lender-password")

	req := httptest.NewRequest(http.MethodPost, "/api/lending/v1/records/record-missing/accept", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

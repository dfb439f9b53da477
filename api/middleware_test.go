package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	mockdb "accountservice/db/mock"
)

func TestRequestIDMiddleware(t *testing.T) {
	testCases := []struct {
		name          string
		setupRequest  func(t *testing.T, request *http.Request)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{{
		name:         "Generates A Request ID",
		setupRequest: func(t *testing.T, request *http.Request) {},
		checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
			require.Equal(t, http.StatusOK, recorder.Code)

			id := recorder.Header().Get(requestIDHeaderKey)
			require.NotEmpty(t, id)

			_, err := uuid.Parse(id)
			require.NoError(t, err)
		},
	}, {
		name: "Honors The Caller's Request ID",
		setupRequest: func(t *testing.T, request *http.Request) {
			request.Header.Set(requestIDHeaderKey, "caller-supplied-id")
		},
		checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
			require.Equal(t, http.StatusOK, recorder.Code)
			require.Equal(t, "caller-supplied-id", recorder.Header().Get(requestIDHeaderKey))
		},
	}}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server := newTestServer(t, mockdb.NewMockStore(ctrl))
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest("GET", "/health", nil)
			require.NoError(t, err)

			testCase.setupRequest(t, request)

			server.router.ServeHTTP(recorder, request)

			testCase.checkResponse(t, recorder)
		})
	}
}

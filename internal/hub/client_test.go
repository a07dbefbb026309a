package hub

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"clone-me-generator/internal/config"

	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return NewClient(&config.HubConfig{Token: "hf_test_token", BaseURL: url})
}

func TestEnsureDatasetRepo(t *testing.T) {
	var gotAuth string
	var gotBody createRepoRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/repos/create", r.URL.Path)
		require.Equal(t, "POST", r.Method)
		gotAuth = r.Header.Get("Authorization")

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newTestClient(server.URL).EnsureDatasetRepo("tdfacer/sample", true)
	require.NoError(t, err)

	require.Equal(t, "Bearer hf_test_token", gotAuth)
	require.Equal(t, "dataset", gotBody.Type)
	require.Equal(t, "sample", gotBody.Name)
	require.Equal(t, "tdfacer", gotBody.Organization)
	require.True(t, gotBody.Private)
}

func TestEnsureDatasetRepoAlreadyExists(t *testing.T) {
	// 409 — репозиторий уже есть, это не ошибка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	require.NoError(t, newTestClient(server.URL).EnsureDatasetRepo("owner/name", false))
}

func TestEnsureDatasetRepoAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "Invalid credentials"}`))
	}))
	defer server.Close()

	err := newTestClient(server.URL).EnsureDatasetRepo("owner/name", false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "401")
	require.Contains(t, err.Error(), "Invalid credentials")
}

func TestEnsureDatasetRepoBadID(t *testing.T) {
	err := newTestClient("http://unused").EnsureDatasetRepo("bez-razdelitelya", false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "owner/name")
}

func TestUploadFile(t *testing.T) {
	content := []byte("\"Category\",\"Question\"\n\"a\",\"b\"\n")
	var lines []commitLine

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/datasets/tdfacer/sample/commit/main", r.URL.Path)
		require.Equal(t, "application/x-ndjson", r.Header.Get("Content-Type"))
		require.Equal(t, "Bearer hf_test_token", r.Header.Get("Authorization"))

		// Разбираем NDJSON построчно
		scanner := bufio.NewScanner(r.Body)
		for scanner.Scan() {
			var line commitLine
			require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
			lines = append(lines, line)
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newTestClient(server.URL).UploadFile("tdfacer/sample", "data.csv", content, "Upload QA dataset")
	require.NoError(t, err)

	require.Len(t, lines, 2)
	require.Equal(t, "header", lines[0].Key)
	require.Equal(t, "file", lines[1].Key)

	header := lines[0].Value.(map[string]interface{})
	require.Equal(t, "Upload QA dataset", header["summary"])

	file := lines[1].Value.(map[string]interface{})
	require.Equal(t, "data.csv", file["path"])
	require.Equal(t, "base64", file["encoding"])

	decoded, err := base64.StdEncoding.DecodeString(file["content"].(string))
	require.NoError(t, err)
	require.Equal(t, content, decoded)
}

func TestUploadFileServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("что-то пошло не так"))
	}))
	defer server.Close()

	err := newTestClient(server.URL).UploadFile("owner/name", "data.csv", []byte("x"), "msg")
	require.Error(t, err)
	require.Contains(t, err.Error(), "500")
}

func TestDatasetURL(t *testing.T) {
	c := newTestClient("https://huggingface.co")
	require.Equal(t, "https://huggingface.co/datasets/owner/name", c.DatasetURL("owner/name"))
}

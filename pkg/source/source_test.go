package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vikt-B/sampling/pkg/config"
	"github.com/Vikt-B/sampling/pkg/model"
)

func strs(rs []*model.Reading) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		if r == nil {
			out = append(out, "<nil>")
			continue
		}
		out = append(out, r.String())
	}
	return out
}

func TestReference(t *testing.T) {
	rs, err := ReferenceSource{}.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, rs, 7)
	assert.Equal(t, "2017-01-03T10:04:45,TEMP,35.79", rs[0].String())
	assert.Equal(t, "2017-01-03T10:05:01,SPO2,95.08", rs[6].String())

	// 每次调用都返回新的数据
	rs[0].Category = model.CategoryHR
	assert.Equal(t, model.CategoryTemp, Reference()[0].Category)
}

func TestFileSource_Load(t *testing.T) {
	tests := []struct {
		file string
		want []string
	}{
		{
			file: "testdata/readings.json",
			want: []string{
				"2017-01-03T10:04:45,TEMP,35.79",
				"2017-01-03T10:01:18,SPO2,98.78",
				"<nil>",
				"2017-01-03T10:09:07,TEMP,35.01",
				"",
			},
		},
		{
			file: "testdata/readings.yaml",
			want: []string{
				"2017-01-03T10:04:45,TEMP,35.79",
				"2017-01-03T10:05:00,SPO2,97.17",
				"",
			},
		},
		{
			file: "testdata/readings.csv",
			want: []string{
				"2017-01-03T10:04:45,TEMP,35.79",
				"2017-01-03T10:05:01,SPO2,95.08",
				"",
				"",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			rs, err := NewFileSource(tt.file).Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, strs(rs))
		})
	}
}

func TestFileSource_KeepsMissingFields(t *testing.T) {
	rs, err := NewFileSource("testdata/readings.csv").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, rs, 4)

	assert.Equal(t, model.CategoryUnknown, rs[2].Category)
	require.NotNil(t, rs[2].Value)
	assert.Equal(t, 61.0, *rs[2].Value)
	assert.Equal(t, model.CategoryHR, rs[3].Category)
	assert.Nil(t, rs[3].Value)

	rs, err = NewFileSource("testdata/readings.yaml").Load(context.Background())
	require.NoError(t, err)
	assert.True(t, rs[2].Timestamp.IsZero())
}

func TestFileSource_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr error
		message string
	}{
		{"文件不存在", "testdata/missing.json", os.ErrNotExist, "failed to read dataset"},
		{"不支持的后缀", "testdata/readings.txt", ErrUnsupportedFormat, "failed to read dataset"},
		{"未知分类", "testdata/bad_category.json", nil, "unknown category"},
		{"无效的数值", "testdata/bad_value.csv", nil, "invalid value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileSource(tt.file).Load(context.Background())
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.message)
			assert.Contains(t, err.Error(), tt.file)
		})
	}
}

func TestHTTPSource_Load(t *testing.T) {
	data, err := os.ReadFile("testdata/readings.csv")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/readings":
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			w.Write(data)
		case "/readings.yaml":
			w.Header().Set("Content-Type", "application/octet-stream")
			w.Write([]byte("- {timestamp: \"2017-01-03T10:05:00\", category: HR, value: 60}\n"))
		case "/slow":
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Run("按 Content-Type 解码", func(t *testing.T) {
		rs, err := NewHTTPSource(srv.URL+"/readings", time.Second).Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, rs, 4)
	})

	t.Run("按 URL 后缀解码", func(t *testing.T) {
		rs, err := NewHTTPSource(srv.URL+"/readings.yaml", time.Second).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"2017-01-03T10:05:00,HR,60.0"}, strs(rs))
	})

	t.Run("非 200 状态码", func(t *testing.T) {
		_, err := NewHTTPSource(srv.URL+"/missing", time.Second).Load(context.Background())
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})

	t.Run("超时", func(t *testing.T) {
		_, err := NewHTTPSource(srv.URL+"/slow", 20*time.Millisecond).Load(context.Background())
		assert.True(t, errors.Is(err, context.DeadlineExceeded), "err = %v", err)
	})
}

func TestBuildTargetUrl(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/readings", buildTargetUrl("localhost:8080/readings"))
	assert.Equal(t, "https://example.com/r.json", buildTargetUrl("https://example.com/r.json"))
}

func TestNew(t *testing.T) {
	s, err := New(config.SourceSettings{Kind: config.SourceReference})
	require.NoError(t, err)
	assert.IsType(t, ReferenceSource{}, s)

	s, err = New(config.SourceSettings{Kind: config.SourceFile, Path: "testdata/readings.json"})
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, s)

	s, err = New(config.SourceSettings{Kind: config.SourceHTTP, URL: "localhost", Timeout: time.Second})
	require.NoError(t, err)
	assert.IsType(t, &HTTPSource{}, s)

	_, err = New(config.SourceSettings{Kind: "kafka"})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

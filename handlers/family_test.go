package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camden-git/familytree/genealogy"
	"github.com/camden-git/familytree/handlers"
	"github.com/camden-git/familytree/lineage"
	"github.com/camden-git/familytree/models"
	"github.com/camden-git/familytree/services"
)

const familyCSV = `id,wbs,name,birth_year,generation,location
1,1,A,1800,1,Beijing
2,1.1,B,1830,2,Shanghai
3,1.2,C,1832,2,
4,1.1.1,D,1860,3,Hangzhou
5,1.10,J,1840,2,
6,2,E,1805,1,
`

func newRouter(t *testing.T, opts ...services.ServiceOption) http.Handler {
	t.Helper()
	family, err := genealogy.ParseCSV(strings.NewReader(familyCSV))
	require.NoError(t, err)
	svc, err := services.NewFamilyService(family, opts...)
	require.NoError(t, err)
	return handlers.NewRouter(&handlers.FamilyHandler{Service: svc, DefaultMaxDepth: 1}, []string{"http://localhost:5173"})
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) handlers.APIErrorDetail {
	t.Helper()
	var resp handlers.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	return resp.Errors[0]
}

func TestHealth(t *testing.T) {
	rr := get(t, newRouter(t), "/api/health")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var stats services.Stats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 6, stats.Persons)
	assert.Equal(t, 2, stats.Roots)
	assert.Equal(t, 4, stats.Edges)
}

func TestListRoots(t *testing.T) {
	rr := get(t, newRouter(t), "/api/roots")
	require.Equal(t, http.StatusOK, rr.Code)

	var roots []handlers.PersonResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &roots))
	require.Len(t, roots, 2)
	assert.Equal(t, "A", roots[0].Name)
	assert.Equal(t, []int{2, 3, 5}, roots[0].Children)
	assert.Equal(t, 1, roots[0].Depth)
}

func TestListPersons_Sorting(t *testing.T) {
	h := newRouter(t)

	cases := []struct {
		sort string
		want []string
	}{
		{"", []string{"A", "B", "C", "D", "J", "E"}},
		{"id_asc", []string{"A", "B", "C", "D", "J", "E"}},
		{"wbs_nat", []string{"A", "B", "D", "C", "J", "E"}},
		{"name_asc", []string{"A", "B", "C", "D", "E", "J"}},
	}
	for _, tc := range cases {
		t.Run("sort="+tc.sort, func(t *testing.T) {
			rr := get(t, h, "/api/persons?sort="+tc.sort)
			require.Equal(t, http.StatusOK, rr.Code)

			var persons []handlers.PersonResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &persons))
			got := make([]string, 0, len(persons))
			for _, p := range persons {
				got = append(got, p.Name)
			}
			assert.Equal(t, tc.want, got)
		})
	}

	rr := get(t, h, "/api/persons?sort=random")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, handlers.CodeInvalidParameter, decodeError(t, rr).Code)
}

func TestGetPerson(t *testing.T) {
	h := newRouter(t)

	rr := get(t, h, "/api/persons/4")
	require.Equal(t, http.StatusOK, rr.Code)
	var p handlers.PersonResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(t, "1.1.1", p.WBS)
	assert.Equal(t, 3, p.Depth)
	require.NotNil(t, p.ParentID)
	assert.Equal(t, 2, *p.ParentID)
	assert.Empty(t, p.DisplayName)

	rr = get(t, h, "/api/persons/99")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, handlers.CodePersonNotFound, decodeError(t, rr).Code)

	rr = get(t, h, "/api/persons/abc")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetPerson_DisplayName(t *testing.T) {
	sys, err := lineage.New([]string{"x", "y", "z"})
	require.NoError(t, err)
	h := newRouter(t, services.WithLineage(sys))

	rr := get(t, h, "/api/persons/4")
	require.Equal(t, http.StatusOK, rr.Code)
	var p handlers.PersonResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(t, "Dz", p.DisplayName)
}

func TestGetSubtree(t *testing.T) {
	h := newRouter(t)

	t.Run("explicit root by wbs", func(t *testing.T) {
		rr := get(t, h, "/api/subtree?root_wbs=1.1")
		require.Equal(t, http.StatusOK, rr.Code)
		var payload services.SubtreePayload
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
		require.Len(t, payload.Nodes, 2)
		assert.Equal(t, []services.PayloadEdge{{From: 2, To: 4}}, payload.Edges)
	})

	t.Run("default root uses configured depth", func(t *testing.T) {
		rr := get(t, h, "/api/subtree")
		require.Equal(t, http.StatusOK, rr.Code)
		var payload services.SubtreePayload
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
		ids := make([]int, 0, len(payload.Nodes))
		for _, n := range payload.Nodes {
			ids = append(ids, n.ID)
		}
		assert.Equal(t, []int{1, 2, 3, 5}, ids)
	})

	t.Run("explicit depth on default root", func(t *testing.T) {
		rr := get(t, h, "/api/subtree?max_depth=0")
		require.Equal(t, http.StatusOK, rr.Code)
		var payload services.SubtreePayload
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
		require.Len(t, payload.Nodes, 1)
		assert.Empty(t, payload.Edges)
	})

	t.Run("generation band", func(t *testing.T) {
		rr := get(t, h, "/api/subtree?root_id=1&gen_min=3")
		require.Equal(t, http.StatusOK, rr.Code)
		var payload services.SubtreePayload
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
		require.Len(t, payload.Nodes, 1)
		assert.Equal(t, "D", payload.Nodes[0].Name)
		assert.Empty(t, payload.Edges)
	})

	errCases := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{"unknown root", "/api/subtree?root_id=99", http.StatusNotFound, handlers.CodeRootNotFound},
		{"unknown wbs", "/api/subtree?root_wbs=9.9", http.StatusNotFound, handlers.CodeRootNotFound},
		{"both selectors", "/api/subtree?root_id=1&root_wbs=1", http.StatusBadRequest, handlers.CodeInvalidQuery},
		{"negative depth", "/api/subtree?root_id=1&max_depth=-1", http.StatusBadRequest, handlers.CodeInvalidQuery},
		{"non-integer", "/api/subtree?root_id=one", http.StatusBadRequest, handlers.CodeInvalidParameter},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := get(t, h, tc.target)
			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, tc.code, decodeError(t, rr).Code)
		})
	}
}

func TestGetSubtree_EmptyFamily(t *testing.T) {
	svc, err := services.NewFamilyService(models.NewFamily(0))
	require.NoError(t, err)
	h := handlers.NewRouter(&handlers.FamilyHandler{Service: svc, DefaultMaxDepth: 2}, nil)

	rr := get(t, h, "/api/subtree")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetTimeline(t *testing.T) {
	rr := get(t, newRouter(t), "/api/timeline")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"1800": [{"name":"A","location":"Beijing","wbs":"1"}],
		"1830": [{"name":"B","location":"Shanghai","wbs":"1.1"}],
		"1860": [{"name":"D","location":"Hangzhou","wbs":"1.1.1"}]
	}`, rr.Body.String())
}

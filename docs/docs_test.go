package docs_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-records/docs"
)

type param struct {
	Name        string `json:"name"`
	In          string `json:"in"`
	Description string `json:"description"`
}

type operation struct {
	Summary     string                     `json:"summary"`
	Description string                     `json:"description"`
	Parameters  []param                    `json:"parameters"`
	Responses   map[string]json.RawMessage `json:"responses"`
}

type swaggerDoc struct {
	Info struct {
		Title   string `json:"title"`
		Version string `json:"version"`
	} `json:"info"`
	Paths       map[string]map[string]operation `json:"paths"`
	Definitions map[string]struct {
		Properties map[string]json.RawMessage `json:"properties"`
	} `json:"definitions"`
}

// annotated es lo que declaran los comentarios de un handler.
type annotated struct {
	method, path, summary, description string
	params                             map[string]string
	codes                              []string
}

var (
	routerRe = regexp.MustCompile(`^@Router\s+(\S+)\s+\[(\w+)\]`)
	paramRe  = regexp.MustCompile(`^@Param\s+(\S+)\s+\S+\s+\S+\s+(?:true|false)\s+"(.*)"`)
	codeRe   = regexp.MustCompile(`^@(?:Success|Failure)\s+(\d+)`)
)

func readAnnotations(t *testing.T) []annotated {
	t.Helper()
	files, err := filepath.Glob("../internal/domain/petcare/handler*.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	var ops []annotated
	for _, f := range files {
		raw, err := os.ReadFile(f)
		require.NoError(t, err)

		cur := annotated{params: map[string]string{}}
		for _, line := range strings.Split(string(raw), "\n") {
			if !strings.HasPrefix(line, "//") {
				if cur.path != "" {
					ops = append(ops, cur)
				}
				cur = annotated{params: map[string]string{}}
				continue
			}
			c := strings.TrimSpace(strings.TrimPrefix(line, "//"))
			switch {
			case strings.HasPrefix(c, "@Summary "):
				cur.summary = strings.TrimSpace(strings.TrimPrefix(c, "@Summary"))
			case strings.HasPrefix(c, "@Description "):
				cur.description = strings.TrimSpace(strings.TrimPrefix(c, "@Description"))
			case paramRe.MatchString(c):
				m := paramRe.FindStringSubmatch(c)
				cur.params[m[1]] = m[2]
			case codeRe.MatchString(c):
				cur.codes = append(cur.codes, codeRe.FindStringSubmatch(c)[1])
			case routerRe.MatchString(c):
				m := routerRe.FindStringSubmatch(c)
				cur.path, cur.method = m[1], strings.ToLower(m[2])
			}
		}
	}
	return ops
}

func loadDoc(t *testing.T) swaggerDoc {
	t.Helper()
	var d swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &d))
	return d
}

func TestDoc_MatchesHandlerAnnotations(t *testing.T) {
	ops := readAnnotations(t)
	require.NotEmpty(t, ops)
	d := loadDoc(t)

	total := 0
	for _, item := range d.Paths {
		total += len(item)
	}
	assert.Equal(t, len(ops), total, "operaciones documentadas sin anotación o al revés")

	for _, a := range ops {
		t.Run(a.method+" "+a.path, func(t *testing.T) {
			op, ok := d.Paths[a.path][a.method]
			require.True(t, ok, "falta la ruta en docs.go")
			assert.Equal(t, a.summary, op.Summary)
			assert.Equal(t, a.description, op.Description)

			got := map[string]string{}
			for _, p := range op.Parameters {
				got[p.Name] = p.Description
			}
			assert.Equal(t, a.params, got)

			for _, code := range a.codes {
				assert.Contains(t, op.Responses, code)
			}
			assert.Len(t, op.Responses, len(a.codes))
		})
	}
}

func TestDoc_DefinitionsFollowModel(t *testing.T) {
	d := loadDoc(t)
	assert.Equal(t, "Pet Care Records API", d.Info.Title)

	appt, ok := d.Definitions["petcare.Appointment"]
	require.True(t, ok)
	assert.Contains(t, appt.Properties, "time")
	assert.JSONEq(t, `{"type":"string","format":"date"}`, string(appt.Properties["date"]))

	prod, ok := d.Definitions["petcare.Product"]
	require.True(t, ok)
	assert.JSONEq(t, `{"$ref":"#/definitions/petcare.ProductType"}`, string(prod.Properties["type"]))
	assert.Contains(t, string(prod.Properties["pet_name"]), "nunca se persiste")

	_, ok = d.Definitions["petcare.ProductType"]
	assert.True(t, ok)
}

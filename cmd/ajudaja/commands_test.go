package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rsilvagit/ajudaja/internal/catalog"
	"github.com/rsilvagit/ajudaja/internal/config"
	"github.com/rsilvagit/ajudaja/internal/geo"
	"github.com/rsilvagit/ajudaja/internal/httpclient"
	"github.com/rsilvagit/ajudaja/internal/submit"
)

func setupApp(t *testing.T, geoURL string) {
	t.Helper()
	client, err := httpclient.New(httpclient.Options{})
	require.NoError(t, err)

	app = &App{
		cfg:       config.Default(),
		logger:    zap.NewNop(),
		catalog:   catalog.New(),
		geo:       geo.New(client, geo.WithBaseURL(geoURL)),
		submitter: submit.New(0, nil),
		ctx:       context.Background(),
	}
	t.Cleanup(func() { app = nil })
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestListCmd_Filters(t *testing.T) {
	setupApp(t, "")

	out, _, err := execute(t, listCmd(), "-c", "Meio Ambiente", "-s", "DF")
	require.NoError(t, err)
	assert.Contains(t, out, "Plantio de Árvores Nativas")
	assert.NotContains(t, out, "Mutirão de Limpeza de Praia")
	assert.Contains(t, out, "Total: 1 oportunidade(s)")

	out, _, err = execute(t, listCmd(), "-q", "praia")
	require.NoError(t, err)
	assert.Contains(t, out, "Mutirão de Limpeza de Praia")
	assert.Contains(t, out, "Total: 1 oportunidade(s)")

	out, _, err = execute(t, listCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 8 oportunidade(s)")
}

func TestListCmd_FeaturedAndNoMatch(t *testing.T) {
	setupApp(t, "")

	out, _, err := execute(t, listCmd(), "--featured", "-c", "Educação")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 0 oportunidade(s)")
}

func TestListCmd_TelegramNeedsCredentials(t *testing.T) {
	setupApp(t, "")

	_, _, err := execute(t, listCmd(), "--telegram")
	assert.ErrorContains(t, err, "TELEGRAM_TOKEN")
}

func TestApplyCmd_ValidationFails(t *testing.T) {
	setupApp(t, "")

	out, errOut, err := execute(t, applyCmd(), "3", "--email", "bad")
	assert.EqualError(t, err, "formulário inválido")
	assert.Contains(t, errOut, "name: Nome é obrigatório")
	assert.Contains(t, errOut, "email: Email inválido")
	assert.Contains(t, errOut, "phone: Telefone é obrigatório")
	assert.Contains(t, errOut, "availability: Disponibilidade é obrigatória")
	assert.NotContains(t, out, submit.SuccessTitle)
}

func TestApplyCmd_Submits(t *testing.T) {
	setupApp(t, "")

	out, _, err := execute(t, applyCmd(), "3",
		"--name", "Ana", "--email", "ana@ong.org", "--phone", "11999999999", "--availability", "sábados")
	require.NoError(t, err)
	assert.Contains(t, out, `Enviando cadastro para "Mutirão de Limpeza de Praia"`)
	assert.Contains(t, out, submit.SuccessTitle)
	assert.Contains(t, out, "Protocolo: ")
}

func TestApplyCmd_UnknownOpportunity(t *testing.T) {
	setupApp(t, "")

	_, _, err := execute(t, applyCmd(), "99", "--name", "Ana")
	assert.ErrorContains(t, err, "oportunidade não encontrada")
}

func TestShowCmd(t *testing.T) {
	setupApp(t, "")

	out, _, err := execute(t, showCmd(), "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Patinhas Felizes")
	assert.Contains(t, out, "tel:")
}

func TestStatesAndCitiesCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/estados":
			w.Write([]byte(`[{"id":29,"sigla":"BA","nome":"Bahia","regiao":{"id":2,"sigla":"NE","nome":"Nordeste"}}]`))
		case "/estados/29/municipios":
			w.Write([]byte(`[{"id":2927408,"nome":"Salvador"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()
	setupApp(t, srv.URL)

	out, _, err := execute(t, statesCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Bahia")
	assert.Contains(t, out, "Nordeste")

	out, _, err = execute(t, citiesCmd(), "29")
	require.NoError(t, err)
	assert.Contains(t, out, "Salvador")

	_, _, err = execute(t, citiesCmd(), "bahia")
	assert.ErrorContains(t, err, "stateID must be a number")
}

func TestStatesCmd_GeoFailureIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	setupApp(t, srv.URL)

	out, _, err := execute(t, statesCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Nenhum estado disponível.")
}

func TestCategoriesCmd(t *testing.T) {
	setupApp(t, "")

	out, _, err := execute(t, categoriesCmd())
	require.NoError(t, err)
	assert.Contains(t, out, catalog.AllCategories+"\n")
	assert.Contains(t, out, "Assistência Social")
}

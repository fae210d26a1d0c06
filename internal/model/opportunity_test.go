package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateCode(t *testing.T) {
	tests := []struct {
		location string
		want     string
		ok       bool
	}{
		{"Salvador, BA", "BA", true},
		{"Brasília,DF ", "DF", true},
		{"Remoto", "", false},
		{"Cidade, SP, Brasil", "SP", true},
		{"Cidade,", "", true},
	}
	for _, tt := range tests {
		got, ok := Opportunity{Location: tt.location}.StateCode()
		assert.Equal(t, tt.want, got, tt.location)
		assert.Equal(t, tt.ok, ok, tt.location)
	}
}

func TestContactURLs(t *testing.T) {
	o := Opportunity{ContactPhone: "(71) 97777-7777", ContactEmail: "acao@oceanolimpo.org"}
	assert.Equal(t, "tel:(71) 97777-7777", o.PhoneURL())
	assert.Equal(t, "mailto:acao@oceanolimpo.org", o.MailURL())
}

func TestFormErrorsOK(t *testing.T) {
	assert.True(t, FormErrors{}.OK())
	assert.True(t, FormErrors(nil).OK())
	assert.False(t, FormErrors{"name": "Nome é obrigatório"}.OK())
}

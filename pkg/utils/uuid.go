package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const executionIDSize = 21

// GenerateExecutionID gera o token opaco que identifica uma execução de sincronização
func GenerateExecutionID() (string, error) {
	return gonanoid.Generate(characters, executionIDSize)
}

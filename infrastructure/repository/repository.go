// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrExecutionNotRunning indica tentativa de alterar uma execução já finalizada
var ErrExecutionNotRunning = errors.New("sync execution is not running")

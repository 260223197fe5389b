package model

type CalculationMessage struct {
	ID      int    `json:"id" yaml:"id"`
	Level   string `json:"level" yaml:"level"`
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const CodeInvalidFamilySize = "INVALID_FAMILY_SIZE"

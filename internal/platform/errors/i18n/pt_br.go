package i18n

var ptBR = map[Code]string{
	CodeDiceMissing:       "Informe pelo menos um dado.",
	CodeDiceInvalidSpec:   "Os dados precisam de quantidade e número de lados positivos.",
	CodeDiceLimitExceeded: "Essa rolagem excede o limite de {{.Limit}} ({{.Max}}).",
	CodeRollTimesInvalid:  "Uma rolagem pode ser repetida de 1 a {{.Max}} vezes.",
	CodeRollIDEmpty:       "O id da rolagem é obrigatório.",
	CodeNotFound:          "O recurso {{.Resource}} não foi encontrado.",
}

package normalizer

// section binds an anchor path under ACERTA to its record-unwrap key and
// rename map. The maps double as the token-reduction mechanism: any source
// field not listed here is dropped from the output.
type section struct {
	path    string
	dataKey string
	fields  []FieldMapping
}

var debtsSection = section{
	path:    "DEBITOS",
	dataKey: "DEBITO",
	fields: []FieldMapping{
		{Source: "DATAOCORRENCIA", Target: "date"},
		{Source: "VALOR", Target: "value"},
		{Source: "INFORMANTE", Target: "creditor"},
		{Source: "CONTRATO", Target: "contract"},
		{Source: "CIDADE", Target: "city"},
		{Source: "UF", Target: "state"},
	},
}

var protestsSection = section{
	path:    "PROTESTOS",
	dataKey: "PROTESTO",
	fields: []FieldMapping{
		{Source: "DATAPROTESTO", Target: "date"},
		{Source: "VALOR", Target: "value"},
		{Source: "CARTORIO", Target: "notaryOffice"},
		{Source: "CIDADE", Target: "city"},
		{Source: "UF", Target: "state"},
	},
}

var badChecksSection = section{
	path:    "CHEQUES",
	dataKey: "CHEQUE",
	fields: []FieldMapping{
		{Source: "DATAOCORRENCIA", Target: "date"},
		{Source: "NUMEROCHEQUE", Target: "checkNumber"},
		{Source: "BANCO", Target: "bank"},
		{Source: "AGENCIA", Target: "branch"},
		{Source: "CIDADE", Target: "city"},
		{Source: "UF", Target: "state"},
	},
}

// The score wrapper and its data key share a name; that is the bureau's
// schema, not a typo.
var scoreSection = section{
	path:    "SCORE",
	dataKey: "SCORE",
	fields: []FieldMapping{
		{Source: "SCORE", Target: "score"},
		{Source: "CLASSIFICACAO", Target: "riskClass"},
		{Source: "PROBABILIDADE", Target: "defaultProbability"},
		{Source: "TEXTO", Target: "description"},
	},
}

var participationSection = section{
	path:    "PARTICIPACOES",
	dataKey: "PARTICIPACAO",
	fields: []FieldMapping{
		{Source: "RAZAOSOCIAL", Target: "companyName"},
		{Source: "CNPJ", Target: "companyId"},
		{Source: "PERCENTUALPARTICIPACAO", Target: "share"},
		{Source: "DATAENTRADA", Target: "entryDate"},
		{Source: "SITUACAO", Target: "status"},
	},
}

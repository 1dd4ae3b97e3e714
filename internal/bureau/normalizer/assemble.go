package normalizer

import (
	"strings"

	"github.com/tidwall/gjson"
)

// acertaPath is the fixed anchor locating the consultation body inside the
// SOAP-derived envelope. Any absent segment degrades every downstream read to
// "not present"; nothing along this chain can fault.
const acertaPath = "body.SPCA-XML.RESPOSTA.ACERTA"

// Normalize assembles the AiContextPayload from one raw envelope. It is total
// over any JSON input, including {}, null roots, and truncated documents:
// missing data yields empty sections, never an error. Callers that need to
// reject non-JSON bytes validate before calling (gjson.ValidBytes).
func Normalize(doc []byte) *AiContextPayload {
	acerta := gjson.GetBytes(doc, acertaPath)

	return &AiContextPayload{
		Identification:   buildIdentification(acerta),
		Location:         buildLocation(acerta),
		FinancialSummary: buildFinancialSummary(acerta),
		NegativeDetails: NegativeDetails{
			Debts:     unifySection(acerta, debtsSection),
			Protests:  unifySection(acerta, protestsSection),
			BadChecks: unifySection(acerta, badChecksSection),
		},
		RiskScore:              unifySection(acerta, scoreSection),
		CorporateParticipation: unifySection(acerta, participationSection),
	}
}

func unifySection(acerta gjson.Result, s section) []Record {
	return unifyBlock(acerta.Get(s.path), s.dataKey, s.fields)
}

func buildIdentification(acerta gjson.Result) Identification {
	consumer := acerta.Get("CONSUMIDOR")
	return Identification{
		Name:           consumer.Get("NOME").String(),
		Document:       consumer.Get("CPF").String(),
		BirthDate:      consumer.Get("DATANASCIMENTO").String(),
		MotherName:     consumer.Get("NOMEMAE").String(),
		DocumentStatus: consumer.Get("SITUACAOCPF").String(),
	}
}

func buildLocation(acerta gjson.Result) Location {
	addr := acerta.Get("CONSUMIDOR.ENDERECO")
	return Location{
		Address:  joinAddress(addr),
		District: addr.Get("BAIRRO").String(),
		City:     addr.Get("CIDADE").String(),
		State:    addr.Get("UF").String(),
		ZipCode:  addr.Get("CEP").String(),
		Phone:    addr.Get("TELEFONE").String(),
	}
}

// joinAddress synthesizes a single street line from the bureau's split
// street-type/street-name/number fields, skipping absent parts so a missing
// number never leaves trailing whitespace.
func joinAddress(addr gjson.Result) string {
	parts := make([]string, 0, 3)
	for _, key := range []string{"TIPOLOGRADOURO", "LOGRADOURO", "NUMERO"} {
		if v := strings.TrimSpace(addr.Get(key).String()); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

// buildFinancialSummary combines the bureau's principal-debtor ("COMPRADOR")
// and guarantor ("FIADOR") counters, which it reports separately but which
// read as a single exposure figure for risk purposes.
func buildFinancialSummary(acerta gjson.Result) FinancialSummary {
	debts := acerta.Get("DEBITOS")
	protests := acerta.Get("PROTESTOS")
	checks := acerta.Get("CHEQUES")

	return FinancialSummary{
		TotalDebtsQty:      sumCounters(debts),
		TotalDebtsValue:    sumValues(debts),
		TotalProtestsQty:   sumCounters(protests),
		TotalProtestsValue: sumValues(protests),
		TotalBadChecksQty:  sumCounters(checks),
	}
}

func sumCounters(block gjson.Result) int {
	return ParseCount(block.Get("QUANTIDADECOMPRADOR").String()) +
		ParseCount(block.Get("QUANTIDADEFIADOR").String())
}

func sumValues(block gjson.Result) float64 {
	return sumMoney(
		block.Get("VALORTOTALCOMPRADOR"),
		block.Get("VALORTOTALFIADOR"),
	)
}

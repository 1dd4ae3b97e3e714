package bureau

import (
	"context"
	"fmt"
	"time"

	id "spc-gateway/pkg/domain"
)

// LookupClient fetches the raw ACERTA envelope for one document. The real
// SOAP transport is owned by the upstream orchestration stage; this service
// only depends on the seam. Mock implementations use deterministic data and a
// configurable latency to mimic real-world calls.
type LookupClient interface {
	Lookup(ctx context.Context, document id.Document) ([]byte, error)
}

// MockAcertaClient returns a fixed envelope exercising all three record-block
// shapes the real bureau produces.
type MockAcertaClient struct {
	Latency time.Duration
}

func (c MockAcertaClient) Lookup(ctx context.Context, document id.Document) ([]byte, error) {
	if c.Latency > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.Latency):
		}
	}
	return fmt.Appendf(nil, mockEnvelope, document.String()), nil
}

// mockEnvelope mirrors the nesting and the shape quirks of a real ACERTA
// response: debts as a wrapped list, protests as a wrapped single record, and
// a score block whose wrapper and data key share a name.
const mockEnvelope = `{
  "body": {
    "SPCA-XML": {
      "RESPOSTA": {
        "ACERTA": {
          "CONSUMIDOR": {
            "NOME": "CONSUMIDOR DE TESTE",
            "CPF": "%s",
            "DATANASCIMENTO": "1984-03-12",
            "ENDERECO": {
              "TIPOLOGRADOURO": "RUA",
              "LOGRADOURO": "DO MOCK",
              "NUMERO": "42",
              "CIDADE": "SAO PAULO",
              "UF": "SP"
            }
          },
          "DEBITOS": {
            "REGISTRO": "S",
            "QUANTIDADECOMPRADOR": "2",
            "QUANTIDADEFIADOR": "0",
            "VALORTOTALCOMPRADOR": "1.500,00",
            "VALORTOTALFIADOR": "0,00",
            "DEBITO": [
              {"DATAOCORRENCIA": "2023-05-10", "VALOR": "1.000,00", "INFORMANTE": "BANCO ALFA", "CONTRATO": "-"},
              {"DATAOCORRENCIA": "2023-08-02", "VALOR": "500,00", "INFORMANTE": "FINANCEIRA BETA", "CONTRATO": "CT-88"}
            ]
          },
          "PROTESTOS": {
            "REGISTRO": "S",
            "QUANTIDADECOMPRADOR": "1",
            "VALORTOTALCOMPRADOR": "320,00",
            "PROTESTO": {"DATAPROTESTO": "2022-11-30", "VALOR": "320,00", "CARTORIO": "2o CARTORIO", "CIDADE": "CAMPINAS", "UF": "SP"}
          },
          "CHEQUES": {"REGISTRO": "N"},
          "SCORE": {
            "REGISTRO": "S",
            "SCORE": {"SCORE": "412", "CLASSIFICACAO": "ALTO RISCO", "PROBABILIDADE": "31,70"}
          },
          "PARTICIPACOES": {"REGISTRO": "N"}
        }
      }
    }
  }
}`

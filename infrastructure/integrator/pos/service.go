package pos

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/discount-sync-api/infrastructure/integrator/pos/posclient"
	"github.com/vfg2006/discount-sync-api/internal/domain"
)

type POSIntegrator struct {
	Client posclient.Client
}

func New(client posclient.Client) *POSIntegrator {
	return &POSIntegrator{
		Client: client,
	}
}

// FetchDiscountedProducts busca os descontos vigentes de uma loja no PDV.
// Lista vazia não é erro: a loja simplesmente não tem descontos no momento.
func (s *POSIntegrator) FetchDiscountedProducts(ctx context.Context, storeIdentifier string) ([]domain.SourceProduct, error) {
	resp, err := s.Client.GetDiscountedProducts(ctx, storeIdentifier)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"store_identifier": storeIdentifier,
			"error":            err.Error(),
		}).Error("pos: falha ao buscar produtos em desconto")
		return nil, domain.NewIntegrationError(domain.SystemSource, "fetch_discounted_products", err)
	}

	products := make([]domain.SourceProduct, 0, len(resp.Products))
	for _, p := range resp.Products {
		products = append(products, domain.SourceProduct{
			Code:       p.Code,
			Price:      p.Price,
			FinalPrice: p.FinalPrice,
			Limit:      p.Limit,
		})
	}

	logrus.WithFields(logrus.Fields{
		"store_identifier": storeIdentifier,
		"products":         len(products),
	}).Debug("pos: produtos em desconto recebidos")

	return products, nil
}

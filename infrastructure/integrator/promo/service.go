package promo

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	promodomain "github.com/vfg2006/discount-sync-api/infrastructure/integrator/promo/domain"
	"github.com/vfg2006/discount-sync-api/infrastructure/integrator/promo/promoclient"
	"github.com/vfg2006/discount-sync-api/internal/domain"
)

type PromoIntegrator struct {
	Client       promoclient.Client
	campaignName string
	location     *time.Location
}

func New(client promoclient.Client, campaignName string, location *time.Location) *PromoIntegrator {
	if location == nil {
		location = time.Local
	}

	return &PromoIntegrator{
		Client:       client,
		campaignName: campaignName,
		location:     location,
	}
}

// Push envia o lote inteiro da loja; não existe confirmação parcial por item
func (s *PromoIntegrator) Push(ctx context.Context, storeRegistration string, batch domain.DiscountBatch) error {
	products := make([]promodomain.BatchProduct, 0, len(batch.Items))
	for _, item := range batch.Items {
		products = append(products, promodomain.BatchProduct{
			Code:       item.Code,
			Price:      item.Price,
			FinalPrice: item.FinalPrice,
			Limit:      item.Limit,
		})
	}

	req := promodomain.BatchRequest{
		StoreRegistration: storeRegistration,
		CampaignName:      s.campaignName,
		Override:          batch.Override,
		StartAt:           batch.Window.StartAt.In(s.location).Format(promodomain.TimeLayout),
		ExpireAt:          batch.Window.ExpireAt.In(s.location).Format(promodomain.TimeLayout),
		Products:          products,
	}

	resp, err := s.Client.PushBatch(ctx, req)
	if err != nil {
		return domain.NewIntegrationError(domain.SystemTarget, "push_batch", err)
	}

	if !resp.Success {
		return domain.NewIntegrationError(domain.SystemTarget, "push_batch",
			fmt.Errorf("lote recusado pela plataforma: %s", resp.Message))
	}

	logrus.WithFields(logrus.Fields{
		"store_registration": storeRegistration,
		"batch_id":           resp.BatchID,
		"products":           len(products),
	}).Debug("promo: lote de descontos aceito")

	return nil
}

func (s *PromoIntegrator) FetchActive(ctx context.Context, storeRegistration string) ([]domain.TargetProduct, error) {
	resp, err := s.Client.GetActiveDiscounts(ctx, storeRegistration)
	if err != nil {
		return nil, domain.NewIntegrationError(domain.SystemTarget, "fetch_active", err)
	}

	products := make([]domain.TargetProduct, 0, len(resp.Data))
	for _, d := range resp.Data {
		product := domain.TargetProduct{
			Code:       d.Code,
			Price:      d.Price,
			FinalPrice: d.FinalPrice,
			Limit:      d.Limit,
		}

		// Datas malformadas não invalidam o desconto para a conciliação, que só compara preços
		if t, err := time.ParseInLocation(promodomain.TimeLayout, d.StartAt, s.location); err == nil {
			product.StartAt = t
		} else if d.StartAt != "" {
			logrus.WithField("start_at", d.StartAt).Warn("promo: data de início inválida")
		}
		if t, err := time.ParseInLocation(promodomain.TimeLayout, d.ExpireAt, s.location); err == nil {
			product.ExpireAt = t
		} else if d.ExpireAt != "" {
			logrus.WithField("expire_at", d.ExpireAt).Warn("promo: data de término inválida")
		}

		products = append(products, product)
	}

	return products, nil
}

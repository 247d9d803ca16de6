package http

import (
	"context"

	"futuresbot/internal/usecasees/structs"
	"futuresbot/models"
)

type OrderUseCase interface {
	PlaceMarket(ctx context.Context, owner string, req *structs.MarketOrderRequest) (*models.OrderResponse, error)
	PlaceLimit(ctx context.Context, owner string, req *structs.LimitOrderRequest) (*models.OrderResponse, error)
	PlaceStopLimit(ctx context.Context, owner string, req *structs.StopLimitOrderRequest) (*models.OrderResponse, error)
	PlaceOCO(ctx context.Context, owner string, req *structs.OCOOrderRequest) (*structs.OCOResponse, error)
	PlaceTWAP(ctx context.Context, owner string, req *structs.TWAPOrderRequest) (*models.OrderResponse, error)
	PlaceGrid(ctx context.Context, owner string, req *structs.GridOrderRequest) (*models.OrderResponse, error)
	List(ctx context.Context, owner string) ([]models.OrderResponse, error)
}

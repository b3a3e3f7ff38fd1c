package reorder_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/omsops/reorder-batch/internal/oms"
	"github.com/omsops/reorder-batch/internal/reorder"
	mock_reorder "github.com/omsops/reorder-batch/internal/reorder/mocks"
	"github.com/omsops/reorder-batch/internal/repository"
	"github.com/omsops/reorder-batch/internal/stock"
)

type pipelineMocks struct {
	orders  *mock_reorder.MockOrderService
	stocks  *mock_reorder.MockStockService
	refunds *mock_reorder.MockRefundStore
	store   *mock_reorder.MockOrderStore
}

func newPipeline(t *testing.T) (*reorder.Pipeline, pipelineMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := pipelineMocks{
		orders:  mock_reorder.NewMockOrderService(ctrl),
		stocks:  mock_reorder.NewMockStockService(ctrl),
		refunds: mock_reorder.NewMockRefundStore(ctrl),
		store:   mock_reorder.NewMockOrderStore(ctrl),
	}
	p := reorder.NewPipeline(m.orders, m.stocks, m.refunds, m.store, stock.NewAllocator(), zap.NewNop())
	return p, m
}

func testJob() *reorder.Job {
	return &reorder.Job{OrderNumber: "PLT-1001", RefundID: "R-1", Skus: []string{"SKU-X"}}
}

func testOrder() *oms.Order {
	return &oms.Order{
		OrderID:      "abc",
		OrderNumber:  "PLT-1001",
		StoreID:      "1",
		CurrencyCode: "GBP",
		CustomerID:   "c-9",
		Email:        "jo@example.com",
		FirstName:    "Jo",
		LastName:     "Bloggs",
		ShippingDetails: oms.ShippingDetails{
			Price:  "3.99",
			Method: "standard",
			Type:   "delivery",
		},
		Items: []oms.OrderItem{{
			Sku:            "SKU-X",
			Quantity:       "1",
			Price:          "9.99",
			OriginalPrice:  "19.99",
			Name:           "Trainers",
			ProductOptions: `{"attributes_info":[{"label":"Size","value":"7"}]}`,
		}},
	}
}

func testRefund() *repository.Refund {
	return &repository.Refund{
		ID:          "R-1",
		Source:      "website",
		IsProcessed: "Pending",
		RefundingLines: []repository.RefundLine{
			{ProductSku: "SKU-X", Quantity: "2"},
		},
	}
}

func stockResponse(levels stock.Levels) *stock.Response {
	return &stock.Response{Skus: []map[string]stock.Levels{{"SKU-X": levels}}}
}

func TestPipeline_Gates(t *testing.T) {
	ctx := context.Background()

	t.Run("order not found", func(t *testing.T) {
		p, m := newPipeline(t)
		m.orders.EXPECT().GetOrder(gomock.Any(), "PLT-1001").Return(nil, nil)

		outcome, err := p.Process(ctx, testJob())
		require.NoError(t, err)

		assert.Equal(t, reorder.GateOrderNotFound, outcome.Gate)
		assert.Equal(t, reorder.FolderFailed, outcome.Folder)
	})

	t.Run("order fetch failure is fatal", func(t *testing.T) {
		p, m := newPipeline(t)
		m.orders.EXPECT().GetOrder(gomock.Any(), "PLT-1001").Return(nil, errors.New("oms down"))

		_, err := p.Process(ctx, testJob())
		assert.Error(t, err)
	})

	t.Run("refund not found", func(t *testing.T) {
		p, m := newPipeline(t)
		m.orders.EXPECT().GetOrder(gomock.Any(), "PLT-1001").Return(testOrder(), nil)
		m.refunds.EXPECT().GetRefund(gomock.Any(), "R-1").Return(nil, repository.ErrObjectNotFound)

		outcome, err := p.Process(ctx, testJob())
		require.NoError(t, err)

		assert.Equal(t, reorder.GateRefundNotFound, outcome.Gate)
		assert.Equal(t, reorder.FolderFailed, outcome.Folder)
	})

	t.Run("refund already cancelled", func(t *testing.T) {
		p, m := newPipeline(t)
		refund := testRefund()
		refund.IsProcessed = repository.StatusCancelled
		m.orders.EXPECT().GetOrder(gomock.Any(), "PLT-1001").Return(testOrder(), nil)
		m.refunds.EXPECT().GetRefund(gomock.Any(), "R-1").Return(refund, nil)

		outcome, err := p.Process(ctx, testJob())
		require.NoError(t, err)

		assert.Equal(t, reorder.GateRefundAlreadyCancelled, outcome.Gate)
		assert.Equal(t, reorder.FolderFailed, outcome.Folder)
	})

	t.Run("refund already completed", func(t *testing.T) {
		p, m := newPipeline(t)
		refund := testRefund()
		refund.IsProcessed = repository.StatusCompleted
		m.orders.EXPECT().GetOrder(gomock.Any(), "PLT-1001").Return(testOrder(), nil)
		m.refunds.EXPECT().GetRefund(gomock.Any(), "R-1").Return(refund, nil)

		outcome, err := p.Process(ctx, testJob())
		require.NoError(t, err)

		assert.Equal(t, reorder.GateRefundAlreadyCompleted, outcome.Gate)
		assert.Equal(t, reorder.FolderAlreadyRefunded, outcome.Folder)
	})

	t.Run("sku not in order", func(t *testing.T) {
		p, m := newPipeline(t)
		job := testJob()
		job.Skus = []string{"SKU-Z"}
		m.orders.EXPECT().GetOrder(gomock.Any(), "PLT-1001").Return(testOrder(), nil)
		m.refunds.EXPECT().GetRefund(gomock.Any(), "R-1").Return(testRefund(), nil)

		outcome, err := p.Process(ctx, job)
		require.NoError(t, err)

		assert.Equal(t, reorder.GateSkuNotInOrder, outcome.Gate)
		assert.Equal(t, reorder.FolderFailed, outcome.Folder)
	})

	t.Run("no stock available", func(t *testing.T) {
		p, m := newPipeline(t)
		m.orders.EXPECT().GetOrder(gomock.Any(), "PLT-1001").Return(testOrder(), nil)
		m.refunds.EXPECT().GetRefund(gomock.Any(), "R-1").Return(testRefund(), nil)
		m.stocks.EXPECT().GetStock(gomock.Any(), []string{"SKU-X"}).
			Return(stockResponse(stock.Levels{"total": 0}), nil)

		outcome, err := p.Process(ctx, testJob())
		require.NoError(t, err)

		assert.Equal(t, reorder.GateNoStockAvailable, outcome.Gate)
		assert.Equal(t, reorder.FolderRejected, outcome.Folder)
	})

	t.Run("partial stock is rejected, not trimmed", func(t *testing.T) {
		p, m := newPipeline(t)
		job := testJob()
		job.Skus = []string{"SKU-X", "SKU-Y"}
		order := testOrder()
		order.Items = append(order.Items, oms.OrderItem{Sku: "SKU-Y", Quantity: "1", Price: "5.00", OriginalPrice: "5.00"})

		m.orders.EXPECT().GetOrder(gomock.Any(), "PLT-1001").Return(order, nil)
		m.refunds.EXPECT().GetRefund(gomock.Any(), "R-1").Return(testRefund(), nil)
		m.stocks.EXPECT().GetStock(gomock.Any(), []string{"SKU-X", "SKU-Y"}).
			Return(&stock.Response{Skus: []map[string]stock.Levels{
				{"SKU-X": {"total": 2, stock.WarehouseJDA: 2}},
				{"SKU-Y": {"total": 0}},
			}}, nil)

		outcome, err := p.Process(ctx, job)
		require.NoError(t, err)

		assert.Equal(t, reorder.GatePartialStockAvailable, outcome.Gate)
		assert.Equal(t, reorder.FolderRejected, outcome.Folder)
	})
}

func TestPipeline_CompensatingWrites(t *testing.T) {
	ctx := context.Background()

	t.Run("refund condition failure is fatal", func(t *testing.T) {
		p, m := newPipeline(t)
		m.orders.EXPECT().GetOrder(gomock.Any(), "PLT-1001").Return(testOrder(), nil)
		m.refunds.EXPECT().GetRefund(gomock.Any(), "R-1").Return(testRefund(), nil)
		m.stocks.EXPECT().GetStock(gomock.Any(), []string{"SKU-X"}).
			Return(stockResponse(stock.Levels{"total": 2, stock.WarehouseJDA: 2}), nil)
		m.refunds.EXPECT().CancelRefundApproval(gomock.Any(), "R-1", gomock.Any()).
			Return(repository.ErrConditionFailed)

		_, err := p.Process(ctx, testJob())
		assert.ErrorIs(t, err, repository.ErrConditionFailed)
	})

	t.Run("shipping flag updated when refunding shipping", func(t *testing.T) {
		p, m := newPipeline(t)
		refund := testRefund()
		refund.IsRefundingShipping = true

		m.orders.EXPECT().GetOrder(gomock.Any(), "PLT-1001").Return(testOrder(), nil)
		m.refunds.EXPECT().GetRefund(gomock.Any(), "R-1").Return(refund, nil)
		m.stocks.EXPECT().GetStock(gomock.Any(), []string{"SKU-X"}).
			Return(stockResponse(stock.Levels{"total": 2, stock.WarehouseJDA: 2}), nil)
		m.refunds.EXPECT().CancelRefundApproval(gomock.Any(), "R-1", gomock.Any()).Return(nil)
		m.store.EXPECT().SetShippingRefunded(gomock.Any(), "PLT-1001", repository.StatusFinanceCancelled).Return(nil)
		m.store.EXPECT().AddLineStatus(gomock.Any(), gomock.Any()).Return(nil)
		m.orders.EXPECT().CreateReorder(gomock.Any(), gomock.Any()).
			Return(&oms.ReorderResponse{OrderNumber: "PLT-2002"}, nil)
		m.store.EXPECT().AddLog(gomock.Any(), gomock.Any()).Return(nil)

		outcome, err := p.Process(ctx, testJob())
		require.NoError(t, err)
		assert.True(t, outcome.Success())
	})

	t.Run("shipping flag untouched when already refunded", func(t *testing.T) {
		p, m := newPipeline(t)
		refund := testRefund()
		refund.IsRefundingShipping = true
		order := testOrder()
		order.ShippingRefunded = repository.StatusShippingRefunded

		m.orders.EXPECT().GetOrder(gomock.Any(), "PLT-1001").Return(order, nil)
		m.refunds.EXPECT().GetRefund(gomock.Any(), "R-1").Return(refund, nil)
		m.stocks.EXPECT().GetStock(gomock.Any(), []string{"SKU-X"}).
			Return(stockResponse(stock.Levels{"total": 2, stock.WarehouseJDA: 2}), nil)
		m.refunds.EXPECT().CancelRefundApproval(gomock.Any(), "R-1", gomock.Any()).Return(nil)
		m.store.EXPECT().AddLineStatus(gomock.Any(), gomock.Any()).Return(nil)
		m.orders.EXPECT().CreateReorder(gomock.Any(), gomock.Any()).
			Return(&oms.ReorderResponse{OrderNumber: "PLT-2002"}, nil)
		m.store.EXPECT().AddLog(gomock.Any(), gomock.Any()).Return(nil)

		outcome, err := p.Process(ctx, testJob())
		require.NoError(t, err)
		assert.True(t, outcome.Success())
	})

	t.Run("line statuses only for skus present in the order", func(t *testing.T) {
		p, m := newPipeline(t)
		refund := testRefund()
		refund.RefundingLines = []repository.RefundLine{
			{ProductSku: " SKU-X ", Quantity: "2"},
			{ProductSku: "SKU-GONE", Quantity: "1"},
		}

		m.orders.EXPECT().GetOrder(gomock.Any(), "PLT-1001").Return(testOrder(), nil)
		m.refunds.EXPECT().GetRefund(gomock.Any(), "R-1").Return(refund, nil)
		m.stocks.EXPECT().GetStock(gomock.Any(), []string{"SKU-X"}).
			Return(stockResponse(stock.Levels{"total": 2, stock.WarehouseJDA: 2}), nil)
		m.refunds.EXPECT().CancelRefundApproval(gomock.Any(), "R-1", gomock.Any()).Return(nil)

		var entry *repository.OrderLineStatus
		m.store.EXPECT().AddLineStatus(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *repository.OrderLineStatus) error {
				entry = e
				return nil
			})
		m.orders.EXPECT().CreateReorder(gomock.Any(), gomock.Any()).
			Return(&oms.ReorderResponse{OrderNumber: "PLT-2002"}, nil)
		m.store.EXPECT().AddLog(gomock.Any(), gomock.Any()).Return(nil)

		_, err := p.Process(ctx, testJob())
		require.NoError(t, err)

		require.NotNil(t, entry)
		assert.True(t, strings.HasPrefix(entry.AttributeID, "OrderLine#Status#SKU-X#"))
		assert.Equal(t, "PLT-1001", entry.OrderID)
		assert.Equal(t, 2, entry.Qty)
		assert.Equal(t, repository.StatusFinanceCancelled, entry.Status)
		assert.Equal(t, repository.StatusCancelled, entry.Type)
		assert.Equal(t, "website", entry.Source)
	})
}

func TestPipeline_Creation(t *testing.T) {
	ctx := context.Background()

	t.Run("creation without order number fails the job", func(t *testing.T) {
		p, m := newPipeline(t)
		m.orders.EXPECT().GetOrder(gomock.Any(), "PLT-1001").Return(testOrder(), nil)
		m.refunds.EXPECT().GetRefund(gomock.Any(), "R-1").Return(testRefund(), nil)
		m.stocks.EXPECT().GetStock(gomock.Any(), []string{"SKU-X"}).
			Return(stockResponse(stock.Levels{"total": 2, stock.WarehouseJDA: 2}), nil)
		m.refunds.EXPECT().CancelRefundApproval(gomock.Any(), "R-1", gomock.Any()).Return(nil)
		m.store.EXPECT().AddLineStatus(gomock.Any(), gomock.Any()).Return(nil)
		m.orders.EXPECT().CreateReorder(gomock.Any(), gomock.Any()).
			Return(&oms.ReorderResponse{}, nil)

		outcome, err := p.Process(ctx, testJob())
		require.NoError(t, err)

		assert.Equal(t, reorder.GateCreationFailed, outcome.Gate)
		assert.Equal(t, reorder.FolderFailed, outcome.Folder)
	})

	t.Run("success writes log and returns done", func(t *testing.T) {
		p, m := newPipeline(t)
		m.orders.EXPECT().GetOrder(gomock.Any(), "PLT-1001").Return(testOrder(), nil)
		m.refunds.EXPECT().GetRefund(gomock.Any(), "R-1").Return(testRefund(), nil)
		m.stocks.EXPECT().GetStock(gomock.Any(), []string{"SKU-X"}).
			Return(stockResponse(stock.Levels{"total": 2, stock.WarehouseJDA: 2}), nil)
		m.refunds.EXPECT().CancelRefundApproval(gomock.Any(), "R-1", gomock.Any()).Return(nil)
		m.store.EXPECT().AddLineStatus(gomock.Any(), gomock.Any()).Return(nil)

		var payload *oms.ReorderRequest
		m.orders.EXPECT().CreateReorder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *oms.ReorderRequest) (*oms.ReorderResponse, error) {
				payload = req
				return &oms.ReorderResponse{OrderNumber: "PLT-2002"}, nil
			})

		var logEntry *repository.OrderLog
		m.store.EXPECT().AddLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *repository.OrderLog) error {
				logEntry = e
				return nil
			})

		outcome, err := p.Process(ctx, testJob())
		require.NoError(t, err)

		assert.True(t, outcome.Success())
		assert.Equal(t, reorder.FolderDone, outcome.Folder)
		assert.Equal(t, "PLT-2002", outcome.NewOrderNumber)
		assert.Equal(t, []string{"SKU-X"}, outcome.Skus)

		require.NotNil(t, payload)
		require.Len(t, payload.Items, 1)
		assert.Equal(t, "SKU-X", payload.Items[0].Sku)
		assert.Equal(t, "PLT-1001", payload.ParentOrderNumber)

		require.NotNil(t, logEntry)
		assert.Equal(t, "PLT-1001", logEntry.OrderID)
		assert.Equal(t, "System", logEntry.User)
		assert.Equal(t, "Shipment", logEntry.Type)
		assert.Contains(t, logEntry.Comment, "PLT-2002")
	})
}

package stock

// Warehouse codes of the two fulfilment systems able to supply a re-order.
const (
	WarehouseWamas = "GB-SHE-WAMAS-1"
	WarehouseJDA   = "GB-SHE-JDA-1"
)

// DefaultWarehousePriority is the business ordering: WAMAS is drawn down
// before JDA whenever it has stock.
var DefaultWarehousePriority = []string{WarehouseWamas, WarehouseJDA}

// Quote is the per-SKU allocation decision derived from a stock response.
type Quote struct {
	Sku        string `json:"sku"`
	Allocation string `json:"allocation,omitempty"`
	Stock      int    `json:"stock"`
}

// Allocator resolves raw stock levels into quotes using an explicit
// warehouse priority list.
type Allocator struct {
	priority []string
}

func NewAllocator(priority ...string) *Allocator {
	if len(priority) == 0 {
		priority = DefaultWarehousePriority
	}
	return &Allocator{priority: priority}
}

// Allocate produces one quote per SKU entry. SKUs with no stock at all keep a
// zero-stock quote; SKUs whose total is positive but held in no prioritised
// warehouse are dropped entirely.
func (a *Allocator) Allocate(resp *Response) []Quote {
	quotes := make([]Quote, 0, len(resp.Skus))
	for _, entry := range resp.Skus {
		for sku, levels := range entry {
			if levels.Total() <= 0 {
				quotes = append(quotes, Quote{Sku: sku, Stock: 0})
				continue
			}
			for _, warehouse := range a.priority {
				if qty := levels[warehouse]; qty > 0 {
					quotes = append(quotes, Quote{Sku: sku, Allocation: warehouse, Stock: qty})
					break
				}
			}
		}
	}
	return quotes
}

// Available filters quotes down to those with positive stock.
func Available(quotes []Quote) []Quote {
	available := make([]Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.Stock > 0 {
			available = append(available, q)
		}
	}
	return available
}

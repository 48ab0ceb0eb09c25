// Package operations coordinates the operations automation agents:
// order fulfillment, inventory management, supply chain setup and
// emergency response.
package operations

import (
	"sync"
	"time"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
	"github.com/Garrettc123/ai-business-automation-tree/logger"
)

// Operation names reported by operations results.
const (
	OpFulfillOrder       = "fulfill_order"
	OpManageInventory    = "manage_inventory"
	OpMonitorSupplyChain = "monitor_supply_chain"
	OpSetupSupplyChain   = "setup_supply_chain"
	OpEmergencyResponse  = "emergency_response"
	OpEfficiencyAudit    = "efficiency_audit"
)

// Inventory model defaults: stock assumed for unseen items, forecast
// demand per cycle and the restock trigger level.
const (
	defaultStock    = 100
	forecastDemand  = 50
	defaultReorder  = 30
	lowStockUrgency = 10
)

var (
	_ branch.Result = Fulfillment{}
	_ branch.Result = InventoryReport{}
	_ branch.Result = SupplyChainStatus{}
	_ branch.Result = SupplyChainSetup{}
	_ branch.Result = EmergencyReport{}
	_ branch.Result = EfficiencyAuditReport{}
)

// Coordinator runs operations workloads and tracks inventory and order
// tallies. Safe for concurrent use.
type Coordinator struct {
	delay time.Duration
	log   *logger.Logger

	mu                 sync.Mutex
	inventory          map[string]int
	ordersQueued       int
	ordersProcessed    int
	inventoryOptimized int
	costSavings        float64
}

// New returns an operations coordinator. delay is the simulated agent
// latency applied per operation; tests pass zero.
func New(delay time.Duration, log *logger.Logger) *Coordinator {
	if log == nil {
		log = logger.NewDefault(branch.Operations)
	}
	return &Coordinator{
		delay:     delay,
		log:       log.WithComponent("branch.operations"),
		inventory: make(map[string]int),
	}
}

// Counters is a snapshot of the coordinator's tallies.
type Counters struct {
	OrdersProcessed    int     `json:"orders_processed"`
	OrdersQueued       int     `json:"orders_queued"`
	InventoryOptimized int     `json:"inventory_optimized"`
	CostSavings        float64 `json:"cost_savings"`
}

// Counters returns the current tallies.
func (c *Coordinator) Counters() Counters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Counters{
		OrdersProcessed:    c.ordersProcessed,
		OrdersQueued:       c.ordersQueued,
		InventoryOptimized: c.inventoryOptimized,
		CostSavings:        c.costSavings,
	}
}

// Stock returns the tracked stock level for an item, assuming the
// default for items not yet seen.
func (c *Coordinator) Stock(itemID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if stock, ok := c.inventory[itemID]; ok {
		return stock
	}
	return defaultStock
}

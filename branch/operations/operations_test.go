package operations

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
)

func TestOptimizeRouting_BalancesReliabilityCostSpeed(t *testing.T) {
	route := optimizeRouting()

	// carrier_c: 0.98*0.5 + (1/19.99)*0.3 + (1/1)*0.2 outscores both
	// cheaper options.
	if route.Carrier.Name != "carrier_c" {
		t.Errorf("expected carrier_c as the optimal route, got %q", route.Carrier.Name)
	}
	if route.EstimatedDays != 1 {
		t.Errorf("expected 1 day estimate, got %d", route.EstimatedDays)
	}
	if route.CostSaving != 0 {
		t.Errorf("expected no saving when the optimal route is the priciest, got %v", route.CostSaving)
	}
}

func TestFulfillOrder_ReservesInventoryAndTracks(t *testing.T) {
	c := New(0, nil)

	order := Order{
		OrderID:    "ORD-LEAD-5438",
		CustomerID: "CUST-2024-001",
		Products:   []string{"automation_suite", "analytics_module"},
		TotalValue: 75000,
	}

	fulfillment, err := c.FulfillOrder(context.Background(), order)
	if err != nil {
		t.Fatalf("FulfillOrder failed: %v", err)
	}

	if fulfillment.Branch() != branch.Operations || fulfillment.Operation() != OpFulfillOrder {
		t.Errorf("unexpected identity %q/%q", fulfillment.Branch(), fulfillment.Operation())
	}
	if fulfillment.Status != "processing" {
		t.Errorf("expected processing status, got %q", fulfillment.Status)
	}
	if !fulfillment.Inventory.AllAvailable {
		t.Error("expected all items available from default stock")
	}
	if got := c.Stock("automation_suite"); got != defaultStock-1 {
		t.Errorf("expected stock %d after reservation, got %d", defaultStock-1, got)
	}

	if !strings.HasPrefix(fulfillment.Delivery.TrackingNumber, "TRK-ORD-LEAD-5438-") {
		t.Errorf("unexpected tracking number %q", fulfillment.Delivery.TrackingNumber)
	}
	if eta := time.Until(fulfillment.Delivery.EstimatedDelivery); eta < 47*time.Hour || eta > 49*time.Hour {
		t.Errorf("expected delivery estimate about 2 days out, got %v", eta)
	}

	if fulfillment.Inspection.Level != "thorough" {
		t.Errorf("expected thorough inspection for a high-value order, got %q", fulfillment.Inspection.Level)
	}
	last := fulfillment.Inspection.Checkpoints[len(fulfillment.Inspection.Checkpoints)-1]
	if !last.ManualReview {
		t.Error("expected manual pre-ship review for thorough inspections")
	}
}

func TestFulfillOrder_StandardInspectionForLowValue(t *testing.T) {
	c := New(0, nil)

	fulfillment, err := c.FulfillOrder(context.Background(), Order{
		OrderID:  "ORD-1",
		Products: []string{"automation_suite"},
	})
	if err != nil {
		t.Fatalf("FulfillOrder failed: %v", err)
	}

	if fulfillment.Inspection.Level != "standard" {
		t.Errorf("expected standard inspection, got %q", fulfillment.Inspection.Level)
	}
}

func TestManageInventory_TriggersReorder(t *testing.T) {
	c := New(0, nil)

	report, err := c.ManageInventory(context.Background(), InventoryRequest{
		ProductID:    "SAAS_001",
		CurrentStock: 45,
		ReorderPoint: 50,
	})
	if err != nil {
		t.Fatalf("ManageInventory failed: %v", err)
	}

	if !report.ReorderTriggered {
		t.Fatal("expected reorder below the reorder point")
	}
	if report.ReorderQuantity != 55 {
		t.Errorf("expected reorder quantity 55 (2x demand minus stock), got %d", report.ReorderQuantity)
	}
	if report.Priority != "medium" {
		t.Errorf("expected medium priority, got %q", report.Priority)
	}
	if report.OptimizationScore != 0.92 {
		t.Errorf("expected optimization score 0.92, got %v", report.OptimizationScore)
	}
}

func TestManageInventory_DefaultsAndUrgency(t *testing.T) {
	c := New(0, nil)
	ctx := context.Background()

	healthy, err := c.ManageInventory(ctx, InventoryRequest{ProductID: "SAAS_002", CurrentStock: 80})
	if err != nil {
		t.Fatalf("ManageInventory failed: %v", err)
	}
	if healthy.ReorderPoint != defaultReorder {
		t.Errorf("expected default reorder point %d, got %d", defaultReorder, healthy.ReorderPoint)
	}
	if healthy.ReorderTriggered {
		t.Error("expected no reorder above the reorder point")
	}

	critical, err := c.ManageInventory(ctx, InventoryRequest{ProductID: "SAAS_003", CurrentStock: 5})
	if err != nil {
		t.Fatalf("ManageInventory failed: %v", err)
	}
	if !critical.ReorderTriggered || critical.Priority != "high" {
		t.Errorf("expected urgent reorder for near-empty stock, got %+v", critical)
	}
	if critical.ReorderQuantity != 95 {
		t.Errorf("expected reorder quantity 95, got %d", critical.ReorderQuantity)
	}
}

func TestMonitorSupplyChain_AlertsOnBacklog(t *testing.T) {
	c := New(0, nil)
	ctx := context.Background()

	status, err := c.MonitorSupplyChain(ctx)
	if err != nil {
		t.Fatalf("MonitorSupplyChain failed: %v", err)
	}
	if status.SystemHealth != "good" || len(status.Alerts) != 0 {
		t.Errorf("expected a quiet queue to be healthy, got %+v", status)
	}

	for i := 0; i < queueAlertThreshold+1; i++ {
		if _, err := c.FulfillOrder(ctx, Order{OrderID: "ORD-bulk", Products: []string{"automation_suite"}}); err != nil {
			t.Fatalf("FulfillOrder failed: %v", err)
		}
	}

	status, err = c.MonitorSupplyChain(ctx)
	if err != nil {
		t.Fatalf("MonitorSupplyChain failed: %v", err)
	}
	if status.SystemHealth != "degraded" {
		t.Errorf("expected degraded health over %d queued orders, got %q", queueAlertThreshold, status.SystemHealth)
	}
	if len(status.Alerts) != 1 || status.Alerts[0].Type != "high_volume" {
		t.Errorf("expected a high_volume alert, got %+v", status.Alerts)
	}
}

func TestEmergencyResponse_EngagesBackups(t *testing.T) {
	c := New(0, nil)

	report, err := c.EmergencyResponse(context.Background(), EmergencyRequest{
		CrisisType:    "service_outage",
		BackupSystems: true,
	})
	if err != nil {
		t.Fatalf("EmergencyResponse failed: %v", err)
	}

	if report.Status != "response_active" {
		t.Errorf("unexpected status %q", report.Status)
	}
	if !report.BackupSystemsEngaged || !report.FailoverCompleted {
		t.Error("expected failover onto backup systems")
	}
}

func TestEfficiencyAudit_ReportsTallies(t *testing.T) {
	c := New(0, nil)
	ctx := context.Background()

	if _, err := c.FulfillOrder(ctx, Order{OrderID: "ORD-1", Products: []string{"automation_suite"}}); err != nil {
		t.Fatalf("FulfillOrder failed: %v", err)
	}

	audit, err := c.EfficiencyAudit(ctx)
	if err != nil {
		t.Fatalf("EfficiencyAudit failed: %v", err)
	}

	if audit.OrdersProcessed != 1 {
		t.Errorf("expected 1 processed order, got %d", audit.OrdersProcessed)
	}
	if audit.OnTimeDeliveryRate != 97.5 {
		t.Errorf("expected 97.5 on-time delivery rate, got %v", audit.OnTimeDeliveryRate)
	}
}

// Package model defines the row types for every table in the Bella Casa
// Furniture synthetic dataset. All entities are keyed by human-readable
// string identifiers with zero-padded numeric suffixes (PROD-001, ORD-00001).
package model

import "time"

// Sales channels.
const (
	ChannelShowroom1 = "showroom_1"
	ChannelShowroom2 = "showroom_2"
	ChannelShowroom3 = "showroom_3"
	ChannelOnline    = "online"
	ChannelWholesale = "wholesale"
)

// Channels lists all sales channels in canonical order.
var Channels = []string{
	ChannelShowroom1,
	ChannelShowroom2,
	ChannelShowroom3,
	ChannelOnline,
	ChannelWholesale,
}

// Product categories.
const (
	CategorySofas   = "Sofas"
	CategoryBeds    = "Beds"
	CategoryTables  = "Tables"
	CategoryChairs  = "Chairs"
	CategoryStorage = "Storage"
)

// Categories lists all product categories in canonical order.
var Categories = []string{
	CategorySofas,
	CategoryBeds,
	CategoryTables,
	CategoryChairs,
	CategoryStorage,
}

// Customer types and segments.
const (
	TypeB2B = "B2B"
	TypeB2C = "B2C"

	SegmentVIP     = "VIP"
	SegmentRegular = "Regular"
	SegmentNew     = "New"
)

// Purchase order statuses.
const (
	POStatusPending   = "pending"
	POStatusInTransit = "in_transit"
	POStatusDelivered = "delivered"
)

// Production order statuses.
const (
	ProductionStatusInProgress = "in_progress"
	ProductionStatusCompleted  = "completed"
)

// Sales order statuses.
const (
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusReturned   = "returned"
)

// Supplier is a raw-material supplier. Immutable after generation.
type Supplier struct {
	ID               string
	Name             string
	Country          string
	City             string
	Latitude         float64
	Longitude        float64
	Category         string
	LeadTimeDays     int
	ReliabilityScore float64
	PaymentTerms     string
}

// Material is a purchasable raw material owned by one supplier. Immutable.
type Material struct {
	ID           string
	Name         string
	Category     string
	Unit         string
	UnitCost     float64
	SupplierID   string
	ReorderPoint int
	ReorderQty   int
}

// Product is a sellable furniture item. Immutable.
type Product struct {
	ID             string
	Name           string
	Category       string
	BasePrice      float64
	ProductionCost float64
	WeightKg       float64
	Active         bool
}

// BOMLine maps a product to one required material.
type BOMLine struct {
	ID             string
	ProductID      string
	MaterialID     string
	QuantityNeeded float64
	Unit           string
}

// Customer is a buyer. LifetimeValue is authoritative only after the
// enforcement pass recomputes it from the final sales table.
type Customer struct {
	ID            string
	Name          string
	Type          string
	Channel       string
	City          string
	Region        string
	Email         string
	Phone         string
	CreatedDate   time.Time
	LifetimeValue float64
	Segment       string
}

// PurchaseOrder is an order placed with a supplier for one material.
// ActualDelivery is zero unless the order has been delivered.
type PurchaseOrder struct {
	ID               string
	SupplierID       string
	MaterialID       string
	Quantity         int
	UnitCost         float64
	TotalCost        float64
	OrderDate        time.Time
	ExpectedDelivery time.Time
	ActualDelivery   time.Time
	Status           string
}

// ProductionOrder is a manufacturing batch for one product.
type ProductionOrder struct {
	ID             string
	ProductID      string
	Quantity       int
	StartDate      time.Time
	EndDate        time.Time
	Status         string
	ProductionCost float64
	DefectCount    int
}

// SalesOrder is a customer order. The enforcement pass may rewrite
// CustomerID, Channel, OrderDate and DeliveryDate on a subset of rows;
// monetary fields and line items are never touched after creation.
// Rating is nil for unrated orders.
type SalesOrder struct {
	ID           string
	CustomerID   string
	OrderDate    time.Time
	Channel      string
	Status       string
	Subtotal     float64
	DiscountPct  float64
	Total        float64
	ShippingCost float64
	DeliveryDate time.Time
	Rating       *float64
}

// LineItem is one product line of a sales order. Never mutated after
// creation, even when the parent order is reassigned.
type LineItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice float64
	LineTotal float64
}

// InventorySnapshot is a point-in-time stock level for one product.
type InventorySnapshot struct {
	ID            string
	Date          time.Time
	ProductID     string
	OnHand        int
	Reserved      int
	Available     int
	ReorderNeeded bool
}

// DailyMetric is one row per calendar day in the generation range.
type DailyMetric struct {
	Date               time.Time
	Revenue            float64
	Orders             int
	AvgOrderValue      float64
	NewCustomers       int
	ReturningCustomers int
	ProductionUnits    int
	DefectRate         float64
	InventoryTurnover  float64
	OnlineShare        float64
}

// SupplierPerformance is a monthly rollup for one supplier. OnTimePct is
// nil when no delivered orders exist for the month.
type SupplierPerformance struct {
	Month        string
	SupplierID   string
	OnTimePct    *float64
	QualityScore float64
	AvgLeadDays  float64
	TotalOrders  int
	TotalSpend   float64
}

// Dataset holds every generated table plus the anchor customer's identity.
// The anchor is carried by ID so no stage needs to match on the name string.
type Dataset struct {
	Suppliers           []Supplier
	Materials           []Material
	Products            []Product
	BOM                 []BOMLine
	Customers           []Customer
	PurchaseOrders      []PurchaseOrder
	ProductionOrders    []ProductionOrder
	SalesOrders         []SalesOrder
	LineItems           []LineItem
	InventorySnapshots  []InventorySnapshot
	DailyMetrics        []DailyMetric
	SupplierPerformance []SupplierPerformance

	AnchorCustomerID string
}

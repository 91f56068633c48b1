package seed

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/Barento999/ecommerce-spa-sub001/entity"
)

const (
	ShippingFee = 9.99
	TaxRate     = 0.10

	minOrders, maxOrders     = 2, 5
	minItems, maxItems       = 1, 3
	minQuantity, maxQuantity = 1, 2

	profileCreatedWindow = 180 * 24 * time.Hour
	lastLoginWindow      = 7 * 24 * time.Hour
	orderCreatedWindow   = 90 * 24 * time.Hour
	orderUpdatedWindow   = 30 * 24 * time.Hour

	trackingPrefix   = "TRK"
	trackingLength   = 9
	trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// statusWheel weights delivered three times as often as the other statuses.
var statusWheel = []entity.OrderStatus{
	entity.OrderProcessing,
	entity.OrderShipped,
	entity.OrderDelivered,
	entity.OrderDelivered,
	entity.OrderDelivered,
}

// Generator produces randomized profile and order records.
// It is not safe for concurrent use.
type Generator struct {
	rng     *rand.Rand
	now     func() time.Time
	catalog []entity.Product
}

// NewGenerator panics if catalog is empty.
func NewGenerator(rng *rand.Rand, now func() time.Time, catalog []entity.Product) *Generator {
	if len(catalog) == 0 {
		panic("seed: empty product catalog")
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{rng: rng, now: now, catalog: catalog}
}

// NewRand returns a PCG-backed source seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// OrderCount draws how many orders to create for one customer.
func (g *Generator) OrderCount() int {
	return g.between(minOrders, maxOrders)
}

// Profile builds the profile document for a newly created account.
func (g *Generator) Profile(account entity.Account, c entity.CustomerSeed) entity.CustomerProfile {
	now := g.now()
	return entity.CustomerProfile{
		ID:              account.UID,
		Email:           c.Email,
		DisplayName:     c.DisplayName,
		PhoneNumber:     c.PhoneNumber,
		ShippingAddress: c.ShippingAddress,
		BillingAddress:  c.ShippingAddress,
		PhotoURL:        nil,
		Preferences:     entity.Preferences{Newsletter: true, Notifications: true},
		CreatedAt:       g.within(now, profileCreatedWindow),
		UpdatedAt:       now,
		LastLogin:       g.within(now, lastLoginWindow),
	}
}

// Order builds one order for account.
//
// CreatedAt and UpdatedAt are drawn independently, so UpdatedAt may precede CreatedAt.
func (g *Generator) Order(account entity.Account) entity.Order {
	n := g.between(minItems, maxItems)
	items := make([]entity.OrderItem, 0, n)
	var sum float64
	for i := 0; i < n; i++ {
		p := g.catalog[g.rng.IntN(len(g.catalog))]
		qty := g.between(minQuantity, maxQuantity)
		items = append(items, entity.OrderItem{
			ProductID:  p.ID,
			Name:       p.Name,
			Price:      p.Price,
			Quantity:   qty,
			Image:      p.Image,
			ProductRef: p.Ref(),
		})
		sum += p.Price * float64(qty)
	}

	subtotal := Round2(sum)
	tax := Round2(subtotal * TaxRate)
	now := g.now()

	return entity.Order{
		UserID:          account.UID,
		UserEmail:       account.Email,
		UserName:        account.DisplayName,
		Items:           items,
		Subtotal:        subtotal,
		Shipping:        ShippingFee,
		Tax:             tax,
		Total:           Round2(subtotal + ShippingFee + tax),
		Status:          statusWheel[g.rng.IntN(len(statusWheel))],
		PaymentStatus:   entity.PaymentCompleted,
		PaymentMethod:   entity.PaymentCreditCard,
		CreatedAt:       g.within(now, orderCreatedWindow),
		UpdatedAt:       g.within(now, orderUpdatedWindow),
		ShippingAddress: PlaceholderShippingAddress,
		TrackingNumber:  g.trackingNumber(),
		Notes:           "",
	}
}

func (g *Generator) trackingNumber() *string {
	if g.rng.IntN(2) == 0 {
		return nil
	}
	var b strings.Builder
	b.Grow(len(trackingPrefix) + trackingLength)
	b.WriteString(trackingPrefix)
	for i := 0; i < trackingLength; i++ {
		b.WriteByte(trackingAlphabet[g.rng.IntN(len(trackingAlphabet))])
	}
	s := b.String()
	return &s
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

// within returns a uniform instant in (now-window, now].
func (g *Generator) within(now time.Time, window time.Duration) time.Time {
	return now.Add(-time.Duration(g.rng.Int64N(int64(window))))
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

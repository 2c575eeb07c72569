package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/avtomir/avtomir-backend/pkg/db/models"
)

const maxListedCars = 5

// FormatPrice renders integer rubles with thousands grouping, e.g. "2 850 000 ₽".
func FormatPrice(price int64) string {
	sign := ""
	if price < 0 {
		sign = "-"
		price = -price
	}

	digits := fmt.Sprintf("%d", price)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return sign + strings.Join(groups, " ") + " ₽"
}

// FormatDate renders timestamps the way the dealership chat expects them.
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

// NewOrderMessage builds the Markdown notification for a freshly created pre-order.
func NewOrderMessage(order *models.PreOrder, car *models.Car) string {
	var b strings.Builder

	b.WriteString("🎉 *New pre-order!*\n\n")
	fmt.Fprintf(&b, "🆔 *Order:* #%d\n", order.ID)
	fmt.Fprintf(&b, "🚗 *Car:* %s %s (%d)\n", car.Make, car.Model, car.Year)
	fmt.Fprintf(&b, "👤 *Customer:* %s\n", order.CustomerName)
	fmt.Fprintf(&b, "📞 *Phone:* %s\n", order.CustomerPhone)
	if order.CustomerEmail != nil && *order.CustomerEmail != "" {
		fmt.Fprintf(&b, "📧 *Email:* %s\n", *order.CustomerEmail)
	}
	if order.Comment != nil && *order.Comment != "" {
		fmt.Fprintf(&b, "💬 *Comment:* %s\n", *order.Comment)
	}
	fmt.Fprintf(&b, "💰 *Price:* %s\n\n", FormatPrice(car.PriceRub))
	fmt.Fprintf(&b, "📅 *Date:* %s", FormatDate(order.CreatedAt))

	return b.String()
}

// CarsMessage renders a short catalog listing for bot replies.
func CarsMessage(cars []models.Car) string {
	if len(cars) == 0 {
		return "🚗 No cars found"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🚗 *Cars found: %d*\n\n", len(cars))

	shown := cars
	if len(shown) > maxListedCars {
		shown = shown[:maxListedCars]
	}
	for i, car := range shown {
		fmt.Fprintf(&b, "%d. *%s %s* (%d)\n", i+1, car.Make, car.Model, car.Year)
		fmt.Fprintf(&b, "💰 %s\n", FormatPrice(car.PriceRub))
		fmt.Fprintf(&b, "📊 %d km | %s | %s\n\n", car.Mileage, car.Fuel, car.Transmission)
	}

	if len(cars) > maxListedCars {
		fmt.Fprintf(&b, "... and %d more", len(cars)-maxListedCars)
	}

	return strings.TrimSpace(b.String())
}

// StatsMessage renders the /stats admin summary.
func StatsMessage(cars []models.Car, featured int) string {
	domestic := 0
	var total int64
	for _, car := range cars {
		if car.Country == "domestic" {
			domestic++
		}
		total += car.PriceRub
	}

	avg := int64(0)
	if len(cars) > 0 {
		avg = total / int64(len(cars))
	}

	var b strings.Builder
	b.WriteString("📊 *Dealership stats*\n\n")
	fmt.Fprintf(&b, "🚗 Cars listed: %d\n", len(cars))
	fmt.Fprintf(&b, "⭐ Featured: %d\n", featured)
	fmt.Fprintf(&b, "🏠 Domestic: %d\n", domestic)
	fmt.Fprintf(&b, "🌍 Foreign: %d\n\n", len(cars)-domestic)
	fmt.Fprintf(&b, "📈 Average price: %s", FormatPrice(avg))

	return b.String()
}

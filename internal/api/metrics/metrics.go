// Package metrics defines all custom Prometheus metrics for the PIM API.
// It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pim"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests rejected by the access-control pipeline.
// Label:
//   - reason: "missing_credential", "invalid_or_expired", "unknown_account" or "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected during authentication or authorization.",
	},
	[]string{"reason"},
)

// ProductsCreatedTotal counts successfully created products.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created.",
	},
)

// ImagesUploadedTotal counts image uploads.
// Label:
//   - result: "ok" or "error"
var ImagesUploadedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "images_uploaded_total",
		Help:      "Total number of product image uploads, by result.",
	},
	[]string{"result"},
)

// ProductListingsTotal counts product listing requests by resolved country.
// Label:
//   - country: the 2-3 letter country code the listing was resolved for
var ProductListingsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_listings_total",
		Help:      "Total number of localized product listings served, by country.",
	},
	[]string{"country"},
)

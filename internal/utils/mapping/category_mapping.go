package mapping

import (
	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
	"github.com/budgetwise/budget_tracker_app/internal/models"
)

// ToModelCategory converts a domain Category to a model Category.
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		Name:        d.Name,
		UserID:      d.UserID,
		Icon:        d.Icon,
		Type:        models.TransactionType(d.Type),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		Name:        m.Name,
		UserID:      m.UserID,
		Icon:        m.Icon,
		Type:        domain.TransactionType(m.Type),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategorySlice converts a slice of model Categories to domain Categories.
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}

package analytics

import (
	"reflect"
	"strings"

	"insight/internal/domain/entity"
	domainerrors "insight/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var ingestValidator = newIngestValidator()

func newIngestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names ("price") instead of Go field names ("Price").
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// Money is compared as a decimal; a float copy loses tiny negative amounts.
	if err := v.RegisterValidation("nonneg_decimal", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)

		return ok && !d.IsNegative()
	}); err != nil {
		panic(err)
	}

	return v
}

// ValidateDataset checks the numeric and required-field rules of every base record
// and the uniqueness of primary keys. The first violation is returned as a
// ValidationError (or ConsistencyError for a duplicated key).
func ValidateDataset(ds *entity.Dataset) error {
	for _, p := range ds.Products {
		if err := validateRecord("product", p.ID, p); err != nil {
			return err
		}
	}
	for _, c := range ds.Customers {
		if err := validateRecord("customer", c.ID, c); err != nil {
			return err
		}
	}
	for _, o := range ds.Orders {
		if err := validateRecord("order", o.ID, o); err != nil {
			return err
		}
	}
	for _, item := range ds.OrderItems {
		if err := validateRecord("order_item", item.OrderID, item); err != nil {
			return err
		}
	}

	if _, err := indexByID(ds.Products, "product", func(p entity.Product) int64 { return p.ID }); err != nil {
		return err
	}
	if _, err := indexByID(ds.Customers, "customer", func(c entity.Customer) int64 { return c.ID }); err != nil {
		return err
	}
	if _, err := indexByID(ds.Orders, "order", func(o entity.Order) int64 { return o.ID }); err != nil {
		return err
	}

	return nil
}

func validateRecord(entityName string, key int64, record any) error {
	err := ingestValidator.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Wrapf(err, "validate %s %d", entityName, key)
	}

	fe := fieldErrs[0]
	reason := fe.Tag()
	if fe.Param() != "" {
		reason += "=" + fe.Param()
	}

	return &domainerrors.ValidationError{
		Entity: entityName,
		Key:    key,
		Field:  fe.Field(),
		Reason: reason,
	}
}

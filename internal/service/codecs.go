package service

import (
	"github.com/jhoicas/retail-pos-api/internal/docstore"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
)

// Codecs de cada familia de entidades. Los nombres de campo son los del
// documento almacenado (camelCase, como los escribía la aplicación original).

func productCodec() Codec[entity.Product] {
	return Codec[entity.Product]{
		Collection: "products",
		Decode: func(id string, doc docstore.Document) (entity.Product, error) {
			f := docstore.NewFields("products", id, doc)
			p := entity.Product{
				ID:                  id,
				Name:                f.RequiredString("productName"),
				SKU:                 f.String("sku"),
				BarcodeType:         f.String("barcodeType"),
				Unit:                f.String("unit"),
				Brand:               f.String("brand"),
				Category:            f.String("category"),
				SubCategory:         f.String("subCategory"),
				ManageStock:         f.Bool("manageStock"),
				AlertQuantity:       f.Decimal("alertQuantity"),
				Description:         f.String("productDescription"),
				NotForSelling:       f.Bool("notForSelling"),
				Weight:              f.Decimal("weight"),
				ApplicableTax:       f.String("applicableTax"),
				SellingPriceTaxType: f.String("sellingPriceTaxType"),
				ProductType:         f.String("productType"),
				PurchasePriceExcTax: f.Decimal("defaultPurchasePriceExcTax"),
				PurchasePriceIncTax: f.Decimal("defaultPurchasePriceIncTax"),
				MarginPercentage:    f.Decimal("marginPercentage"),
				SellingPriceExcTax:  f.Decimal("defaultSellingPriceExcTax"),
				CreatedAt:           f.Time("createdAt"),
				UpdatedAt:           f.Time("updatedAt"),
			}
			return p, f.Err()
		},
		Encode: func(p entity.Product) docstore.Document {
			return docstore.Document{
				"productName":                p.Name,
				"sku":                        p.SKU,
				"barcodeType":                p.BarcodeType,
				"unit":                       p.Unit,
				"brand":                      p.Brand,
				"category":                   p.Category,
				"subCategory":                p.SubCategory,
				"manageStock":                p.ManageStock,
				"alertQuantity":              docstore.Num(p.AlertQuantity),
				"productDescription":         p.Description,
				"notForSelling":              p.NotForSelling,
				"weight":                     docstore.Num(p.Weight),
				"applicableTax":              p.ApplicableTax,
				"sellingPriceTaxType":        p.SellingPriceTaxType,
				"productType":                p.ProductType,
				"defaultPurchasePriceExcTax": docstore.Num(p.PurchasePriceExcTax),
				"defaultPurchasePriceIncTax": docstore.Num(p.PurchasePriceIncTax),
				"marginPercentage":           docstore.Num(p.MarginPercentage),
				"defaultSellingPriceExcTax":  docstore.Num(p.SellingPriceExcTax),
				"createdAt":                  docstore.TS(p.CreatedAt),
				"updatedAt":                  docstore.TS(p.UpdatedAt),
			}
		},
	}
}

func decodeLines(f *docstore.Fields, collection, id string) []entity.LineItem {
	docs := f.Documents("lines")
	out := make([]entity.LineItem, 0, len(docs))
	for _, d := range docs {
		lf := docstore.NewFields(collection, id, d)
		out = append(out, entity.LineItem{
			ProductID:   lf.String("productId"),
			ProductName: lf.String("productName"),
			Quantity:    lf.Decimal("quantity"),
			UnitPrice:   lf.Decimal("unitPrice"),
			Discount:    lf.Decimal("discount"),
			Subtotal:    lf.Decimal("subtotal"),
		})
		f.Adopt(lf.Err())
	}
	return out
}

func encodeLines(lines []entity.LineItem) []any {
	out := make([]any, 0, len(lines))
	for _, l := range lines {
		out = append(out, map[string]any{
			"productId":   l.ProductID,
			"productName": l.ProductName,
			"quantity":    docstore.Num(l.Quantity),
			"unitPrice":   docstore.Num(l.UnitPrice),
			"discount":    docstore.Num(l.Discount),
			"subtotal":    docstore.Num(l.Subtotal),
		})
	}
	return out
}

func tradeCodec(collection string) Codec[entity.TradeDocument] {
	return Codec[entity.TradeDocument]{
		Collection: collection,
		Decode: func(id string, doc docstore.Document) (entity.TradeDocument, error) {
			f := docstore.NewFields(collection, id, doc)
			t := entity.TradeDocument{
				ID:              id,
				Party:           f.String("party"),
				Date:            f.Time("date"),
				ReferenceNo:     f.String("referenceNo"),
				Location:        f.String("businessLocation"),
				Status:          f.String("status"),
				PaymentStatus:   f.String("paymentStatus"),
				ShippingStatus:  f.String("shippingStatus"),
				Lines:           decodeLines(f, collection, id),
				DiscountType:    f.String("discountType"),
				DiscountAmount:  f.Decimal("discountAmount"),
				TaxRate:         f.Decimal("orderTax"),
				ShippingCharges: f.Decimal("shippingCharges"),
				ItemsTotal:      f.Decimal("itemsTotal"),
				GrandTotal:      f.Decimal("grandTotal"),
				PaymentAmount:   f.Decimal("paymentAmount"),
				PaymentMethod:   f.String("paymentMethod"),
				PaymentDue:      f.Decimal("paymentDue"),
				Notes:           f.String("notes"),
				AddedBy:         f.String("addedBy"),
				CreatedAt:       f.Time("createdAt"),
				UpdatedAt:       f.Time("updatedAt"),
			}
			return t, f.Err()
		},
		Encode: func(t entity.TradeDocument) docstore.Document {
			return docstore.Document{
				"party":            t.Party,
				"date":             docstore.TS(t.Date),
				"referenceNo":      t.ReferenceNo,
				"businessLocation": t.Location,
				"status":           t.Status,
				"paymentStatus":    t.PaymentStatus,
				"shippingStatus":   t.ShippingStatus,
				"lines":            encodeLines(t.Lines),
				"discountType":     t.DiscountType,
				"discountAmount":   docstore.Num(t.DiscountAmount),
				"orderTax":         docstore.Num(t.TaxRate),
				"shippingCharges":  docstore.Num(t.ShippingCharges),
				"itemsTotal":       docstore.Num(t.ItemsTotal),
				"grandTotal":       docstore.Num(t.GrandTotal),
				"paymentAmount":    docstore.Num(t.PaymentAmount),
				"paymentMethod":    t.PaymentMethod,
				"paymentDue":       docstore.Num(t.PaymentDue),
				"notes":            t.Notes,
				"addedBy":          t.AddedBy,
				"createdAt":        docstore.TS(t.CreatedAt),
				"updatedAt":        docstore.TS(t.UpdatedAt),
			}
		},
	}
}

func transferCodec() Codec[entity.StockTransfer] {
	const collection = "stock-transfers"
	return Codec[entity.StockTransfer]{
		Collection: collection,
		Decode: func(id string, doc docstore.Document) (entity.StockTransfer, error) {
			f := docstore.NewFields(collection, id, doc)
			t := entity.StockTransfer{
				ID:              id,
				Date:            f.Time("date"),
				ReferenceNo:     f.String("referenceNo"),
				FromLocation:    f.String("locationFrom"),
				ToLocation:      f.String("locationTo"),
				Status:          f.String("status"),
				Lines:           decodeLines(f, collection, id),
				ShippingCharges: f.Decimal("shippingCharges"),
				ItemsTotal:      f.Decimal("itemsTotal"),
				GrandTotal:      f.Decimal("grandTotal"),
				Notes:           f.String("notes"),
				CreatedAt:       f.Time("createdAt"),
				UpdatedAt:       f.Time("updatedAt"),
			}
			return t, f.Err()
		},
		Encode: func(t entity.StockTransfer) docstore.Document {
			return docstore.Document{
				"date":            docstore.TS(t.Date),
				"referenceNo":     t.ReferenceNo,
				"locationFrom":    t.FromLocation,
				"locationTo":      t.ToLocation,
				"status":          t.Status,
				"lines":           encodeLines(t.Lines),
				"shippingCharges": docstore.Num(t.ShippingCharges),
				"itemsTotal":      docstore.Num(t.ItemsTotal),
				"grandTotal":      docstore.Num(t.GrandTotal),
				"notes":           t.Notes,
				"createdAt":       docstore.TS(t.CreatedAt),
				"updatedAt":       docstore.TS(t.UpdatedAt),
			}
		},
	}
}

func adjustmentCodec() Codec[entity.StockAdjustment] {
	const collection = "adjustments"
	return Codec[entity.StockAdjustment]{
		Collection: collection,
		Decode: func(id string, doc docstore.Document) (entity.StockAdjustment, error) {
			f := docstore.NewFields(collection, id, doc)
			a := entity.StockAdjustment{
				ID:              id,
				Date:            f.Time("date"),
				ReferenceNo:     f.String("referenceNo"),
				Location:        f.String("businessLocation"),
				AdjustmentType:  f.String("adjustmentType"),
				Lines:           decodeLines(f, collection, id),
				TotalAmount:     f.Decimal("totalAmount"),
				RecoveredAmount: f.Decimal("recoveredAmount"),
				Reason:          f.String("reason"),
				CreatedAt:       f.Time("createdAt"),
				UpdatedAt:       f.Time("updatedAt"),
			}
			return a, f.Err()
		},
		Encode: func(a entity.StockAdjustment) docstore.Document {
			return docstore.Document{
				"date":             docstore.TS(a.Date),
				"referenceNo":      a.ReferenceNo,
				"businessLocation": a.Location,
				"adjustmentType":   a.AdjustmentType,
				"lines":            encodeLines(a.Lines),
				"totalAmount":      docstore.Num(a.TotalAmount),
				"recoveredAmount":  docstore.Num(a.RecoveredAmount),
				"reason":           a.Reason,
				"createdAt":        docstore.TS(a.CreatedAt),
				"updatedAt":        docstore.TS(a.UpdatedAt),
			}
		},
	}
}

func stockLevelCodec() Codec[entity.StockLevel] {
	const collection = "stock-levels"
	return Codec[entity.StockLevel]{
		Collection: collection,
		Decode: func(id string, doc docstore.Document) (entity.StockLevel, error) {
			f := docstore.NewFields(collection, id, doc)
			l := entity.StockLevel{
				ID:        id,
				ProductID: f.RequiredString("productId"),
				Location:  f.String("businessLocation"),
				Quantity:  f.Decimal("quantity"),
				UpdatedAt: f.Time("updatedAt"),
			}
			return l, f.Err()
		},
		Encode: func(l entity.StockLevel) docstore.Document {
			return docstore.Document{
				"productId":        l.ProductID,
				"businessLocation": l.Location,
				"quantity":         docstore.Num(l.Quantity),
				"updatedAt":        docstore.TS(l.UpdatedAt),
			}
		},
	}
}

func partyCodec(collection string) Codec[entity.Party] {
	return Codec[entity.Party]{
		Collection: collection,
		Decode: func(id string, doc docstore.Document) (entity.Party, error) {
			f := docstore.NewFields(collection, id, doc)
			p := entity.Party{
				ID:             id,
				IsBusiness:     f.Bool("isBusiness"),
				ContactID:      f.String("contactId"),
				BusinessName:   f.String("businessName"),
				FirstName:      f.String("firstName"),
				LastName:       f.String("lastName"),
				Email:          f.String("email"),
				Mobile:         f.String("mobile"),
				Landline:       f.String("landline"),
				TaxNumber:      f.String("taxNumber"),
				OpeningBalance: f.Decimal("openingBalance"),
				PayTermDays:    f.Int("payTermDays"),
				AddressLine1:   f.String("addressLine1"),
				AddressLine2:   f.String("addressLine2"),
				City:           f.String("city"),
				State:          f.String("state"),
				Country:        f.String("country"),
				ZipCode:        f.String("zipCode"),
				Group:          f.String("group"),
				AssignedTo:     f.String("assignedTo"),
				CreatedAt:      f.Time("createdAt"),
				UpdatedAt:      f.Time("updatedAt"),
			}
			return p, f.Err()
		},
		Encode: func(p entity.Party) docstore.Document {
			return docstore.Document{
				"isBusiness":     p.IsBusiness,
				"contactId":      p.ContactID,
				"businessName":   p.BusinessName,
				"firstName":      p.FirstName,
				"lastName":       p.LastName,
				"email":          p.Email,
				"mobile":         p.Mobile,
				"landline":       p.Landline,
				"taxNumber":      p.TaxNumber,
				"openingBalance": docstore.Num(p.OpeningBalance),
				"payTermDays":    p.PayTermDays,
				"addressLine1":   p.AddressLine1,
				"addressLine2":   p.AddressLine2,
				"city":           p.City,
				"state":          p.State,
				"country":        p.Country,
				"zipCode":        p.ZipCode,
				"group":          p.Group,
				"assignedTo":     p.AssignedTo,
				"createdAt":      docstore.TS(p.CreatedAt),
				"updatedAt":      docstore.TS(p.UpdatedAt),
			}
		},
	}
}

func expenseCodec() Codec[entity.Expense] {
	const collection = "expenses"
	return Codec[entity.Expense]{
		Collection: collection,
		Decode: func(id string, doc docstore.Document) (entity.Expense, error) {
			f := docstore.NewFields(collection, id, doc)
			e := entity.Expense{
				ID:            id,
				Category:      f.String("category"),
				SubCategory:   f.String("subCategory"),
				Location:      f.String("businessLocation"),
				ReferenceNo:   f.String("referenceNo"),
				Date:          f.Time("date"),
				Amount:        f.Decimal("amount"),
				TaxRate:       f.Decimal("applicableTax"),
				PaymentMethod: f.String("paymentMethod"),
				ExpenseFor:    f.String("expenseFor"),
				IsRefund:      f.Bool("isRefund"),
				IsRecurring:   f.Bool("isRecurring"),
				Note:          f.String("note"),
				CreatedAt:     f.Time("createdAt"),
				UpdatedAt:     f.Time("updatedAt"),
			}
			return e, f.Err()
		},
		Encode: func(e entity.Expense) docstore.Document {
			return docstore.Document{
				"category":         e.Category,
				"subCategory":      e.SubCategory,
				"businessLocation": e.Location,
				"referenceNo":      e.ReferenceNo,
				"date":             docstore.TS(e.Date),
				"amount":           docstore.Num(e.Amount),
				"applicableTax":    docstore.Num(e.TaxRate),
				"paymentMethod":    e.PaymentMethod,
				"expenseFor":       e.ExpenseFor,
				"isRefund":         e.IsRefund,
				"isRecurring":      e.IsRecurring,
				"note":             e.Note,
				"createdAt":        docstore.TS(e.CreatedAt),
				"updatedAt":        docstore.TS(e.UpdatedAt),
			}
		},
	}
}

func namedCodec(collection string) Codec[entity.NamedRecord] {
	return Codec[entity.NamedRecord]{
		Collection: collection,
		Decode: func(id string, doc docstore.Document) (entity.NamedRecord, error) {
			f := docstore.NewFields(collection, id, doc)
			n := entity.NamedRecord{
				ID:          id,
				Name:        f.RequiredString("name"),
				Description: f.String("description"),
				CreatedAt:   f.Time("createdAt"),
				UpdatedAt:   f.Time("updatedAt"),
			}
			return n, f.Err()
		},
		Encode: func(n entity.NamedRecord) docstore.Document {
			return docstore.Document{
				"name":        n.Name,
				"description": n.Description,
				"createdAt":   docstore.TS(n.CreatedAt),
				"updatedAt":   docstore.TS(n.UpdatedAt),
			}
		},
	}
}

func unitCodec() Codec[entity.Unit] {
	const collection = "units"
	return Codec[entity.Unit]{
		Collection: collection,
		Decode: func(id string, doc docstore.Document) (entity.Unit, error) {
			f := docstore.NewFields(collection, id, doc)
			u := entity.Unit{
				ID:           id,
				Name:         f.RequiredString("name"),
				ShortName:    f.String("shortName"),
				AllowDecimal: f.Bool("allowDecimal"),
				CreatedAt:    f.Time("createdAt"),
				UpdatedAt:    f.Time("updatedAt"),
			}
			return u, f.Err()
		},
		Encode: func(u entity.Unit) docstore.Document {
			return docstore.Document{
				"name":         u.Name,
				"shortName":    u.ShortName,
				"allowDecimal": u.AllowDecimal,
				"createdAt":    docstore.TS(u.CreatedAt),
				"updatedAt":    docstore.TS(u.UpdatedAt),
			}
		},
	}
}

func taxCodec() Codec[entity.Tax] {
	const collection = "taxes"
	return Codec[entity.Tax]{
		Collection: collection,
		Decode: func(id string, doc docstore.Document) (entity.Tax, error) {
			f := docstore.NewFields(collection, id, doc)
			t := entity.Tax{
				ID:        id,
				Name:      f.RequiredString("name"),
				Rate:      f.Decimal("rate"),
				CreatedAt: f.Time("createdAt"),
				UpdatedAt: f.Time("updatedAt"),
			}
			return t, f.Err()
		},
		Encode: func(t entity.Tax) docstore.Document {
			return docstore.Document{
				"name":      t.Name,
				"rate":      docstore.Num(t.Rate),
				"createdAt": docstore.TS(t.CreatedAt),
				"updatedAt": docstore.TS(t.UpdatedAt),
			}
		},
	}
}

func warrantyCodec() Codec[entity.Warranty] {
	const collection = "warranties"
	return Codec[entity.Warranty]{
		Collection: collection,
		Decode: func(id string, doc docstore.Document) (entity.Warranty, error) {
			f := docstore.NewFields(collection, id, doc)
			w := entity.Warranty{
				ID:           id,
				Name:         f.RequiredString("name"),
				Description:  f.String("description"),
				Duration:     f.Int("duration"),
				DurationType: f.String("durationType"),
				CreatedAt:    f.Time("createdAt"),
				UpdatedAt:    f.Time("updatedAt"),
			}
			return w, f.Err()
		},
		Encode: func(w entity.Warranty) docstore.Document {
			return docstore.Document{
				"name":         w.Name,
				"description":  w.Description,
				"duration":     w.Duration,
				"durationType": w.DurationType,
				"createdAt":    docstore.TS(w.CreatedAt),
				"updatedAt":    docstore.TS(w.UpdatedAt),
			}
		},
	}
}

func discountCodec() Codec[entity.Discount] {
	const collection = "discounts"
	return Codec[entity.Discount]{
		Collection: collection,
		Decode: func(id string, doc docstore.Document) (entity.Discount, error) {
			f := docstore.NewFields(collection, id, doc)
			d := entity.Discount{
				ID:             id,
				Name:           f.RequiredString("name"),
				Brand:          f.String("brand"),
				Category:       f.String("category"),
				Location:       f.String("businessLocation"),
				Priority:       f.Int("priority"),
				DiscountType:   f.String("discountType"),
				DiscountAmount: f.Decimal("discountAmount"),
				StartsAt:       f.Time("startsAt"),
				EndsAt:         f.Time("endsAt"),
				IsActive:       f.Bool("isActive"),
				CreatedAt:      f.Time("createdAt"),
				UpdatedAt:      f.Time("updatedAt"),
			}
			return d, f.Err()
		},
		Encode: func(d entity.Discount) docstore.Document {
			return docstore.Document{
				"name":             d.Name,
				"brand":            d.Brand,
				"category":         d.Category,
				"businessLocation": d.Location,
				"priority":         d.Priority,
				"discountType":     d.DiscountType,
				"discountAmount":   docstore.Num(d.DiscountAmount),
				"startsAt":         docstore.TS(d.StartsAt),
				"endsAt":           docstore.TS(d.EndsAt),
				"isActive":         d.IsActive,
				"createdAt":        docstore.TS(d.CreatedAt),
				"updatedAt":        docstore.TS(d.UpdatedAt),
			}
		},
	}
}

func roleCodec() Codec[entity.Role] {
	const collection = "roles"
	return Codec[entity.Role]{
		Collection: collection,
		Decode: func(id string, doc docstore.Document) (entity.Role, error) {
			f := docstore.NewFields(collection, id, doc)
			r := entity.Role{
				ID:          id,
				Name:        f.RequiredString("name"),
				Permissions: f.PermissionTree("permissions"),
				CreatedAt:   f.Time("createdAt"),
				UpdatedAt:   f.Time("updatedAt"),
			}
			return r, f.Err()
		},
		Encode: func(r entity.Role) docstore.Document {
			perms := make(map[string]any, len(r.Permissions))
			for module, actions := range r.Permissions {
				m := make(map[string]any, len(actions))
				for action, ok := range actions {
					m[action] = ok
				}
				perms[module] = m
			}
			return docstore.Document{
				"name":        r.Name,
				"permissions": perms,
				"createdAt":   docstore.TS(r.CreatedAt),
				"updatedAt":   docstore.TS(r.UpdatedAt),
			}
		},
	}
}

func userCodec() Codec[entity.User] {
	const collection = "users"
	return Codec[entity.User]{
		Collection: collection,
		Decode: func(id string, doc docstore.Document) (entity.User, error) {
			f := docstore.NewFields(collection, id, doc)
			u := entity.User{
				ID:           id,
				Username:     f.RequiredString("username"),
				Email:        f.String("email"),
				PasswordHash: f.String("passwordHash"),
				FirstName:    f.String("firstName"),
				LastName:     f.String("lastName"),
				Role:         f.String("role"),
				IsActive:     f.Bool("isActive"),
				CreatedAt:    f.Time("createdAt"),
				UpdatedAt:    f.Time("updatedAt"),
			}
			return u, f.Err()
		},
		Encode: func(u entity.User) docstore.Document {
			return docstore.Document{
				"username":     u.Username,
				"email":        u.Email,
				"passwordHash": u.PasswordHash,
				"firstName":    u.FirstName,
				"lastName":     u.LastName,
				"role":         u.Role,
				"isActive":     u.IsActive,
				"createdAt":    docstore.TS(u.CreatedAt),
				"updatedAt":    docstore.TS(u.UpdatedAt),
			}
		},
	}
}

func leadCodec() Codec[entity.Lead] {
	const collection = "leads"
	return Codec[entity.Lead]{
		Collection: collection,
		Decode: func(id string, doc docstore.Document) (entity.Lead, error) {
			f := docstore.NewFields(collection, id, doc)
			l := entity.Lead{
				ID:         id,
				Name:       f.RequiredString("name"),
				Email:      f.String("email"),
				Mobile:     f.String("mobile"),
				Source:     f.String("source"),
				LifeStage:  f.String("lifeStage"),
				AssignedTo: f.String("assignedTo"),
				CreatedAt:  f.Time("createdAt"),
				UpdatedAt:  f.Time("updatedAt"),
			}
			return l, f.Err()
		},
		Encode: func(l entity.Lead) docstore.Document {
			return docstore.Document{
				"name":       l.Name,
				"email":      l.Email,
				"mobile":     l.Mobile,
				"source":     l.Source,
				"lifeStage":  l.LifeStage,
				"assignedTo": l.AssignedTo,
				"createdAt":  docstore.TS(l.CreatedAt),
				"updatedAt":  docstore.TS(l.UpdatedAt),
			}
		},
	}
}

func followUpCodec() Codec[entity.FollowUp] {
	const collection = "follow-ups"
	return Codec[entity.FollowUp]{
		Collection: collection,
		Decode: func(id string, doc docstore.Document) (entity.FollowUp, error) {
			f := docstore.NewFields(collection, id, doc)
			fu := entity.FollowUp{
				ID:          id,
				Title:       f.RequiredString("title"),
				Contact:     f.String("contact"),
				Category:    f.String("category"),
				Status:      f.String("status"),
				StartAt:     f.Time("startAt"),
				EndAt:       f.Time("endAt"),
				Description: f.String("description"),
				CreatedAt:   f.Time("createdAt"),
				UpdatedAt:   f.Time("updatedAt"),
			}
			return fu, f.Err()
		},
		Encode: func(fu entity.FollowUp) docstore.Document {
			return docstore.Document{
				"title":       fu.Title,
				"contact":     fu.Contact,
				"category":    fu.Category,
				"status":      fu.Status,
				"startAt":     docstore.TS(fu.StartAt),
				"endAt":       docstore.TS(fu.EndAt),
				"description": fu.Description,
				"createdAt":   docstore.TS(fu.CreatedAt),
				"updatedAt":   docstore.TS(fu.UpdatedAt),
			}
		},
	}
}

package localcart

// Entry is the client-held projection of a cart line. The field names are
// the storefront's, not the server's; the two shapes never mix outside
// this file.
type Entry struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Qty   int32   `json:"qty"`
}

// ServerItem is the wire shape of a cart line as the cart API speaks it.
type ServerItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int32   `json:"quantity"`
	Price       float64 `json:"price"`
}

func EntriesFromServer(items []ServerItem) []Entry {
	out := make([]Entry, 0, len(items))
	for _, it := range items {
		out = append(out, Entry{
			ID:    it.ProductID,
			Title: it.ProductName,
			Price: it.Price,
			Qty:   it.Quantity,
		})
	}
	return out
}

func ServerItemsFromEntries(entries []Entry) []ServerItem {
	out := make([]ServerItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, ServerItem{
			ProductID:   e.ID,
			ProductName: e.Title,
			Quantity:    e.Qty,
			Price:       e.Price,
		})
	}
	return out
}

package handler

import (
	"time"

	"tienda/internal/domain/entity"
	"tienda/internal/usecase"
)

// View DTOs decouple the wire format from the domain entities and keep
// credential fields out of responses.

type accountView struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func newAccountView(account *entity.Account) *accountView {
	if account == nil {
		return nil
	}

	return &accountView{
		ID:    account.ID,
		Email: account.Email,
		Name:  account.Name,
		Role:  account.Role.String(),
	}
}

type customerView struct {
	ID             int64        `json:"id"`
	ClientType     string       `json:"clientType"`
	Identification string       `json:"identification"`
	Phone          string       `json:"phone"`
	Address        string       `json:"address"`
	Confirmed      bool         `json:"confirmed"`
	Account        *accountView `json:"account,omitempty"`
	Review         *reviewView  `json:"review,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
}

func newCustomerView(customer *entity.Customer) *customerView {
	if customer == nil {
		return nil
	}

	return &customerView{
		ID:             customer.ID,
		ClientType:     string(customer.ClientType),
		Identification: customer.Identification,
		Phone:          customer.Phone,
		Address:        customer.Address,
		Confirmed:      customer.Confirmed,
		Account:        newAccountView(customer.Account),
		Review:         newReviewView(customer.Review),
		CreatedAt:      customer.CreatedAt,
	}
}

func newCustomerViews(customers []*entity.Customer) []*customerView {
	views := make([]*customerView, 0, len(customers))
	for _, customer := range customers {
		views = append(views, newCustomerView(customer))
	}

	return views
}

type agentView struct {
	ID             int64        `json:"id"`
	Availability   bool         `json:"availability"`
	Status         string       `json:"status"`
	Phone          string       `json:"phone"`
	Identification string       `json:"identification"`
	Account        *accountView `json:"account,omitempty"`
}

func newAgentView(agent *entity.DeliveryAgent) *agentView {
	if agent == nil {
		return nil
	}

	return &agentView{
		ID:             agent.ID,
		Availability:   agent.Availability,
		Status:         string(agent.Status),
		Phone:          agent.Phone,
		Identification: agent.Identification,
		Account:        newAccountView(agent.Account),
	}
}

func newAgentViews(agents []*entity.DeliveryAgent) []*agentView {
	views := make([]*agentView, 0, len(agents))
	for _, agent := range agents {
		views = append(views, newAgentView(agent))
	}

	return views
}

type identityView struct {
	Role          string        `json:"role"`
	Account       *accountView  `json:"account"`
	Customer      *customerView `json:"customer,omitempty"`
	DeliveryAgent *agentView    `json:"deliveryMan,omitempty"`
}

func newIdentityView(identity *entity.Identity) *identityView {
	if identity == nil {
		return nil
	}

	return &identityView{
		Role:          identity.Role().String(),
		Account:       newAccountView(identity.Account),
		Customer:      newCustomerView(identity.Customer),
		DeliveryAgent: newAgentView(identity.DeliveryAgent),
	}
}

type categoryView struct {
	ID            int64              `json:"id"`
	Name          string             `json:"name"`
	Visibility    bool               `json:"visibility"`
	SubCategories []*subCategoryView `json:"subCategories,omitempty"`
}

func newCategoryView(category *entity.Category) *categoryView {
	if category == nil {
		return nil
	}

	view := &categoryView{
		ID:         category.ID,
		Name:       category.Name,
		Visibility: category.Visibility,
	}
	for _, subCategory := range category.SubCategories {
		view.SubCategories = append(view.SubCategories, newSubCategoryView(subCategory))
	}

	return view
}

func newCategoryViews(categories []*entity.Category) []*categoryView {
	views := make([]*categoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, newCategoryView(category))
	}

	return views
}

type subCategoryView struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"categoryId"`
	Name       string `json:"name"`
	Visibility bool   `json:"visibility"`
}

func newSubCategoryView(subCategory *entity.SubCategory) *subCategoryView {
	if subCategory == nil {
		return nil
	}

	return &subCategoryView{
		ID:         subCategory.ID,
		CategoryID: subCategory.CategoryID,
		Name:       subCategory.Name,
		Visibility: subCategory.Visibility,
	}
}

func newSubCategoryViews(subCategories []*entity.SubCategory) []*subCategoryView {
	views := make([]*subCategoryView, 0, len(subCategories))
	for _, subCategory := range subCategories {
		views = append(views, newSubCategoryView(subCategory))
	}

	return views
}

type productView struct {
	ID            int64   `json:"id"`
	SubCategoryID int64   `json:"subCategoryId"`
	Name          string  `json:"name"`
	NIT           string  `json:"nit"`
	Description   string  `json:"description"`
	ImgURL        string  `json:"imgUrl"`
	Availability  bool    `json:"availability"`
	PriceBefore   float64 `json:"priceBefore"`
	PriceAfter    float64 `json:"priceAfter"`
	IVA           float64 `json:"iva"`
	Offer         bool    `json:"offer"`
}

func newProductView(product *entity.Product) *productView {
	if product == nil {
		return nil
	}

	return &productView{
		ID:            product.ID,
		SubCategoryID: product.SubCategoryID,
		Name:          product.Name,
		NIT:           product.NIT,
		Description:   product.Description,
		ImgURL:        product.ImgURL,
		Availability:  product.Availability,
		PriceBefore:   product.PriceBefore,
		PriceAfter:    product.PriceAfter,
		IVA:           product.IVA,
		Offer:         product.Offer,
	}
}

func newProductViews(products []*entity.Product) []*productView {
	views := make([]*productView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product))
	}

	return views
}

type orderLineView struct {
	ProductID int64        `json:"productId"`
	Quantity  int          `json:"quantity"`
	Product   *productView `json:"product,omitempty"`
}

type orderView struct {
	ID            int64            `json:"id"`
	PaymentMethod string           `json:"paymentMethod"`
	DeliveryType  string           `json:"deliveryType"`
	Status        string           `json:"status"`
	Address       string           `json:"address"`
	Request       string           `json:"request,omitempty"`
	CompletedAt   *time.Time       `json:"completedAt,omitempty"`
	Customer      *customerView    `json:"customer,omitempty"`
	DeliveryAgent *agentView       `json:"deliveryMan,omitempty"`
	Lines         []*orderLineView `json:"products"`
	CreatedAt     time.Time        `json:"createdAt"`
}

func newOrderView(order *entity.Order) *orderView {
	if order == nil {
		return nil
	}

	view := &orderView{
		ID:            order.ID,
		PaymentMethod: string(order.PaymentMethod),
		DeliveryType:  string(order.DeliveryType),
		Status:        string(order.Status),
		Address:       order.Address,
		Request:       order.Request,
		CompletedAt:   order.CompletedAt,
		Customer:      newCustomerView(order.Customer),
		DeliveryAgent: newAgentView(order.DeliveryAgent),
		Lines:         make([]*orderLineView, 0, len(order.Lines)),
		CreatedAt:     order.CreatedAt,
	}
	for _, line := range order.Lines {
		view.Lines = append(view.Lines, &orderLineView{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Product:   newProductView(line.Product),
		})
	}

	return view
}

func newOrderViews(orders []*entity.Order) []*orderView {
	views := make([]*orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}

	return views
}

type reviewView struct {
	ID            int64         `json:"id"`
	Description   string        `json:"description"`
	Qualification int           `json:"qualification"`
	Visibility    bool          `json:"visibility"`
	Customer      *customerView `json:"customer,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

func newReviewView(review *entity.Review) *reviewView {
	if review == nil {
		return nil
	}

	return &reviewView{
		ID:            review.ID,
		Description:   review.Description,
		Qualification: review.Qualification,
		Visibility:    review.Visibility,
		Customer:      newCustomerView(review.Customer),
		CreatedAt:     review.CreatedAt,
	}
}

func newReviewViews(reviews []*entity.Review) []*reviewView {
	views := make([]*reviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, newReviewView(review))
	}

	return views
}

type messageView struct {
	ID         int64  `json:"id"`
	Message    string `json:"message"`
	Visibility bool   `json:"visibility"`
}

func newMessageView(message *entity.Message) *messageView {
	if message == nil {
		return nil
	}

	return &messageView{
		ID:         message.ID,
		Message:    message.Message,
		Visibility: message.Visibility,
	}
}

func newMessageViews(messages []*entity.Message) []*messageView {
	views := make([]*messageView, 0, len(messages))
	for _, message := range messages {
		views = append(views, newMessageView(message))
	}

	return views
}

type paginationView struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
}

func newPaginationView(p usecase.Pagination) paginationView {
	return paginationView{
		Total:       p.Total,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
	}
}

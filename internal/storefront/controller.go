// Package storefront реализует ядро витрины: корзину, оформление заказа,
// переключение экранов и транзиентные состояния интерфейса.
package storefront

import (
	"go.uber.org/zap"

	"github.com/mmeshcher/storefront-system/internal/model"
	"github.com/mmeshcher/storefront-system/internal/siteconfig"
)

// Catalog описывает контракт каталога товаров, используемый ядром.
type Catalog interface {
	Products() []model.Product
	ByID(id string) (model.Product, bool)
}

// Session описывает контракт сессии пользователя, используемый ядром.
type Session interface {
	CurrentUser() *model.User
	IsAuthenticated() bool
}

// OrderStore принимает оформленные заказы.
type OrderStore interface {
	Add(o model.Order) error
}

// Metrics принимает события витрины.
type Metrics interface {
	TrackVisit()
	TrackAddToCart()
}

// SiteConfig отдаёт конфигурацию содержимого витрины.
type SiteConfig interface {
	Config() siteconfig.Config
}

// Deps перечисляет зависимости ядра витрины. Каждый провайдер отвечает
// ровно за одну заботу и передаётся явно при создании контроллера.
type Deps struct {
	Catalog    Catalog
	Session    Session
	Orders     OrderStore
	Metrics    Metrics
	SiteConfig SiteConfig
	Logger     *zap.Logger
}

// Toast описывает транзиентное сообщение пользователю. Очереди нет:
// новое сообщение перекрывает предыдущее. Seq растёт на каждом показе
// и отличает повторный показ того же текста от отсутствия изменений.
type Toast struct {
	Message string
	Visible bool
	Seq     uint64
}

// AllCategories — служебная категория, отключающая фильтр по категории.
const AllCategories = "All"

// Controller владеет состоянием сеанса витрины. Все изменения состояния
// проходят только через его методы; контроллер рассчитан на вызовы
// из одной горутины, как и обработчики событий исходного интерфейса.
type Controller struct {
	deps   Deps
	logger *zap.Logger

	cartItems []model.CartItem
	cartOpen  bool

	activeCategory string
	searchQuery    string

	view model.View

	selectedProduct  *model.Product
	productModalOpen bool
	authModalOpen    bool

	toast Toast
}

// NewController создаёт контроллер витрины и фиксирует посещение.
func NewController(deps Deps) *Controller {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Controller{
		deps:           deps,
		logger:         logger,
		activeCategory: AllCategories,
		view:           model.ViewHome,
	}

	if deps.Metrics != nil {
		deps.Metrics.TrackVisit()
	}

	return c
}

// View возвращает активный экран витрины.
func (c *Controller) View() model.View {
	return c.view
}

// RequestView выполняет переход на запрошенный экран и возвращает
// фактически установленный. Проверка прав выполняется до фиксации
// перехода, промежуточных недопустимых состояний не возникает.
func (c *Controller) RequestView(requested model.View) model.View {
	next := NextView(requested, c.deps.Session.CurrentUser())
	if next != requested {
		c.logger.Info("admin view denied",
			zap.String("requested", string(requested)),
			zap.String("view", string(next)),
		)
	}
	c.view = next
	return next
}

// NextView — чистая функция перехода между экранами. Экран администратора
// доступен только ролям admin, assistant и agent; остальным возвращается home.
func NextView(requested model.View, user *model.User) model.View {
	if requested == model.ViewAdmin && !user.HasAdminAccess() {
		return model.ViewHome
	}
	return requested
}

// ShowToast показывает сообщение, перекрывая предыдущее.
func (c *Controller) ShowToast(message string) {
	c.toast = Toast{
		Message: message,
		Visible: true,
		Seq:     c.toast.Seq + 1,
	}
}

// DismissToast скрывает текущее сообщение.
func (c *Controller) DismissToast() {
	c.toast.Visible = false
}

// Toast возвращает текущее транзиентное сообщение.
func (c *Controller) Toast() Toast {
	return c.toast
}

// OpenCart открывает панель корзины.
func (c *Controller) OpenCart() {
	c.cartOpen = true
}

// CloseCart закрывает панель корзины.
func (c *Controller) CloseCart() {
	c.cartOpen = false
}

// IsCartOpen сообщает, открыта ли панель корзины.
func (c *Controller) IsCartOpen() bool {
	return c.cartOpen
}

// QuickView открывает модальное окно быстрого просмотра товара.
func (c *Controller) QuickView(p model.Product) {
	c.selectedProduct = &p
	c.productModalOpen = true
}

// CloseProductModal закрывает окно быстрого просмотра.
func (c *Controller) CloseProductModal() {
	c.productModalOpen = false
}

// SelectedProduct возвращает товар, открытый в быстром просмотре, или nil.
func (c *Controller) SelectedProduct() *model.Product {
	return c.selectedProduct
}

// IsProductModalOpen сообщает, открыто ли окно быстрого просмотра.
func (c *Controller) IsProductModalOpen() bool {
	return c.productModalOpen
}

// OpenAuthModal открывает окно входа.
func (c *Controller) OpenAuthModal() {
	c.authModalOpen = true
}

// CloseAuthModal закрывает окно входа.
func (c *Controller) CloseAuthModal() {
	c.authModalOpen = false
}

// IsAuthModalOpen сообщает, открыто ли окно входа.
func (c *Controller) IsAuthModalOpen() bool {
	return c.authModalOpen
}

// Effect описывает побочное действие, которое слой отображения должен
// выполнить после обработки промо-слайда. Прокрутка и открытие модального
// окна не являются состоянием ядра.
type Effect int

const (
	// EffectScrollToProducts — прокрутить страницу к списку товаров.
	EffectScrollToProducts Effect = iota
	// EffectOpenProductModal — показать быстрый просмотр выбранного товара.
	EffectOpenProductModal
)

// HandleSlide обрабатывает действие промо-слайда и возвращает эффект
// для слоя отображения. Отсутствующий в каталоге товар молча заменяется
// прокруткой к списку товаров.
func (c *Controller) HandleSlide(slide model.Slide) Effect {
	switch {
	case slide.LinkType == model.SlideLinkCategory && slide.LinkTarget != "":
		c.activeCategory = slide.LinkTarget
		return EffectScrollToProducts
	case slide.LinkType == model.SlideLinkProduct && slide.LinkTarget != "":
		p, ok := c.deps.Catalog.ByID(slide.LinkTarget)
		if !ok {
			return EffectScrollToProducts
		}
		c.QuickView(p)
		return EffectOpenProductModal
	default:
		return EffectScrollToProducts
	}
}

// DisplaySlides возвращает промо-слайды главного экрана.
func (c *Controller) DisplaySlides() []model.Slide {
	slides := c.deps.SiteConfig.Config().Slides
	out := make([]model.Slide, len(slides))
	copy(out, slides)
	return out
}

// DisplayCategories возвращает категории для панели фильтров,
// начиная со служебной категории "All".
func (c *Controller) DisplayCategories() []string {
	categories := c.deps.SiteConfig.Config().Categories
	out := make([]string, 0, len(categories)+1)
	out = append(out, AllCategories)
	out = append(out, categories...)
	return out
}

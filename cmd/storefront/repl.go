package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/storefront-system/internal/auth"
	"github.com/mmeshcher/storefront-system/internal/config"
	"github.com/mmeshcher/storefront-system/internal/currency"
	"github.com/mmeshcher/storefront-system/internal/model"
	"github.com/mmeshcher/storefront-system/internal/order"
	"github.com/mmeshcher/storefront-system/internal/storefront"
)

// repl реализует строчный интерфейс витрины: каждая команда — одно событие,
// обрабатываемое контроллером целиком до чтения следующей.
type repl struct {
	cfg        *config.Config
	controller *storefront.Controller
	session    *auth.Service
	orders     *order.Store
	converter  *currency.Converter
	in         io.Reader
	out        io.Writer
}

func newREPL(cfg *config.Config, controller *storefront.Controller, session *auth.Service, orders *order.Store, converter *currency.Converter, in io.Reader, out io.Writer) *repl {
	return &repl{
		cfg:        cfg,
		controller: controller,
		session:    session,
		orders:     orders,
		converter:  converter,
		in:         in,
		out:        out,
	}
}

// run читает команды до закрытия ввода, команды quit или отмены контекста.
func (r *repl) run(ctx context.Context) error {
	fmt.Fprintf(r.out, "Welcome to %s. Type 'help' for commands.\n", r.cfg.StoreName)
	r.renderView()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Fprint(r.out, "> ")
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if !r.dispatch(strings.Fields(strings.TrimSpace(line))) {
				return nil
			}
			r.renderToast()
		}
	}
}

// dispatch выполняет одну команду; возвращает false для завершения работы.
func (r *repl) dispatch(args []string) bool {
	if len(args) == 0 {
		return true
	}

	switch cmd := args[0]; cmd {
	case "quit", "exit":
		return false
	case "help":
		r.printHelp()
	case "products":
		r.printProducts()
	case "categories":
		fmt.Fprintln(r.out, strings.Join(r.controller.DisplayCategories(), ", "))
	case "category":
		r.controller.SetActiveCategory(strings.Join(args[1:], " "))
		r.printProducts()
	case "search":
		r.controller.SetSearchQuery(strings.Join(args[1:], " "))
		r.printProducts()
	case "clear":
		r.controller.ClearFilters()
		r.printProducts()
	case "slides":
		r.printSlides()
	case "slide":
		r.handleSlide(args[1:])
	case "add":
		r.handleAdd(args[1:])
	case "cart":
		r.printCart()
	case "inc":
		r.updateQuantity(args[1:], 1)
	case "dec":
		r.updateQuantity(args[1:], -1)
	case "remove":
		r.handleRemove(args[1:])
	case "checkout":
		r.controller.Checkout()
		r.renderView()
	case "register":
		r.handleRegister(args[1:])
	case "login":
		r.handleLogin(args[1:])
	case "logout":
		r.session.SignOut()
		r.controller.RequestView(model.ViewHome)
		fmt.Fprintln(r.out, "Signed out.")
	case "view":
		r.handleView(args[1:])
	case "status":
		r.handleStatus(args[1:])
	case "history":
		r.handleHistory(args[1:])
	default:
		fmt.Fprintf(r.out, "Unknown command %q. Type 'help'.\n", cmd)
	}

	return true
}

func (r *repl) printHelp() {
	fmt.Fprintln(r.out, `Commands:
  products                         list products under current filters
  categories                       list category filters
  category <name>                  filter by category ("All" clears)
  search <query>                   filter by name or brand
  clear                            reset filters
  slides / slide <n>               show or activate promo slides
  add <n> [qty]                    add product n from the list to the cart
  cart                             show the cart
  inc <n> / dec <n> / remove <n>   change cart line n
  checkout                         place an order
  register <name> <email> <pass>   create an account
  login <email> <pass> / logout    manage the session
  view <home|admin|profile|orders> switch screens
  status <order-id> <status>       admin: change order status
  history <order-id>               show order status history
  quit`)
}

func (r *repl) printProducts() {
	products := r.controller.VisibleProducts()
	fmt.Fprintf(r.out, "%d items found (category: %s, search: %q)\n",
		len(products), r.controller.ActiveCategory(), r.controller.SearchQuery())
	for i, p := range products {
		fmt.Fprintf(r.out, "%3d. %-26s %-12s %-12s %s\n",
			i+1, p.Name, p.Brand, p.Category, r.converter.Format(p.Price))
	}
	if len(products) == 0 {
		fmt.Fprintln(r.out, "No products found. Use 'clear' to reset filters.")
	}
}

func (r *repl) printSlides() {
	for i, s := range r.slides() {
		fmt.Fprintf(r.out, "%3d. %s - %s\n", i+1, s.Title, s.Subtitle)
	}
}

func (r *repl) slides() []model.Slide {
	return r.controller.DisplaySlides()
}

func (r *repl) handleSlide(args []string) {
	slides := r.slides()
	idx, ok := parseIndex(args, len(slides))
	if !ok {
		fmt.Fprintln(r.out, "Usage: slide <n>")
		return
	}

	effect := r.controller.HandleSlide(slides[idx])
	switch effect {
	case storefront.EffectOpenProductModal:
		r.printSelectedProduct()
	default:
		r.printProducts()
	}
}

func (r *repl) printSelectedProduct() {
	p := r.controller.SelectedProduct()
	if p == nil || !r.controller.IsProductModalOpen() {
		return
	}
	fmt.Fprintf(r.out, "--- %s ---\n%s, %s\nPrice: %s\n", p.Name, p.Brand, p.Category, r.converter.Format(p.Price))
}

func (r *repl) handleAdd(args []string) {
	products := r.controller.VisibleProducts()
	idx, ok := parseIndex(args, len(products))
	if !ok {
		fmt.Fprintln(r.out, "Usage: add <n> [qty]")
		return
	}

	qty := 1
	if len(args) > 1 {
		q, err := strconv.Atoi(args[1])
		if err != nil || q < 1 {
			fmt.Fprintln(r.out, "Quantity must be a positive number.")
			return
		}
		qty = q
	}

	r.controller.AddToCart(products[idx], qty)
}

func (r *repl) printCart() {
	items := r.controller.CartItems()
	if len(items) == 0 {
		fmt.Fprintln(r.out, "Your cart is empty.")
		return
	}

	for i, item := range items {
		fmt.Fprintf(r.out, "%3d. %-26s x%-3d %s\n", i+1, item.Name, item.Quantity,
			r.converter.Format(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))))
	}

	subtotal, shipping, total := r.controller.Totals()
	fmt.Fprintf(r.out, "Subtotal: %s\nShipping: %s\nTotal:    %s\n",
		r.converter.Format(subtotal), r.converter.Format(shipping), r.converter.Format(total))
}

func (r *repl) updateQuantity(args []string, delta int) {
	items := r.controller.CartItems()
	idx, ok := parseIndex(args, len(items))
	if !ok {
		fmt.Fprintln(r.out, "Usage: inc <n> / dec <n>")
		return
	}
	r.controller.UpdateQuantity(items[idx].ID, delta)
	r.printCart()
}

func (r *repl) handleRemove(args []string) {
	items := r.controller.CartItems()
	idx, ok := parseIndex(args, len(items))
	if !ok {
		fmt.Fprintln(r.out, "Usage: remove <n>")
		return
	}
	r.controller.RemoveItem(items[idx].ID)
	r.printCart()
}

func (r *repl) handleRegister(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(r.out, "Usage: register <name> <email> <password>")
		return
	}

	name := strings.Join(args[:len(args)-2], " ")
	email := args[len(args)-2]
	password := args[len(args)-1]

	if _, err := r.session.Register(name, email, password, model.RoleCustomer); err != nil {
		fmt.Fprintf(r.out, "Registration failed: %v\n", err)
		return
	}
	fmt.Fprintln(r.out, "Account created. Use 'login' to sign in.")
}

func (r *repl) handleLogin(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(r.out, "Usage: login <email> <password>")
		return
	}

	if _, err := r.session.SignIn(args[0], args[1]); err != nil {
		fmt.Fprintf(r.out, "Sign in failed: %v\n", err)
		return
	}

	r.controller.CloseAuthModal()
	r.controller.ShowToast(fmt.Sprintf("Welcome back, %s!", r.session.CurrentUser().Name))
}

func (r *repl) handleView(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: view <home|admin|profile|orders>")
		return
	}

	requested := model.View(args[0])
	switch requested {
	case model.ViewHome, model.ViewAdmin, model.ViewProfile, model.ViewOrders:
	default:
		fmt.Fprintf(r.out, "Unknown view %q.\n", args[0])
		return
	}

	committed := r.controller.RequestView(requested)
	if committed != requested {
		fmt.Fprintln(r.out, "Admin access denied.")
	}
	r.renderView()
}

func (r *repl) handleStatus(args []string) {
	user := r.session.CurrentUser()
	if !user.HasAdminAccess() {
		fmt.Fprintln(r.out, "Admin access denied.")
		return
	}
	if len(args) != 2 {
		fmt.Fprintln(r.out, "Usage: status <order-id> <status>")
		return
	}

	if err := r.orders.UpdateStatus(args[0], model.OrderStatus(args[1]), user.Name, user.ID); err != nil {
		fmt.Fprintf(r.out, "Status update failed: %v\n", err)
		return
	}
	fmt.Fprintln(r.out, "Order status updated.")
}

func (r *repl) handleHistory(args []string) {
	user := r.session.CurrentUser()
	if user == nil {
		fmt.Fprintln(r.out, "Sign in to see order history.")
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: history <order-id>")
		return
	}

	o, err := r.orders.ByID(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "History lookup failed: %v\n", err)
		return
	}
	if o.UserID != user.ID && !user.HasAdminAccess() {
		fmt.Fprintln(r.out, "Admin access denied.")
		return
	}

	for _, h := range o.StatusHistory {
		fmt.Fprintf(r.out, "%s  %-10s  by %s\n", h.Date.Format("2006-01-02 15:04:05"), h.Status, h.ChangedBy)
	}
}

// renderView показывает содержимое активного экрана. Экраны профиля и заказов
// без открытой сессии не отображают ничего, как и исходная витрина.
func (r *repl) renderView() {
	switch r.controller.View() {
	case model.ViewHome:
		r.printProducts()
	case model.ViewAdmin:
		r.printAllOrders()
	case model.ViewProfile:
		if u := r.session.CurrentUser(); u != nil {
			fmt.Fprintf(r.out, "%s <%s> (%s)\n", u.Name, u.Email, u.Role)
		}
	case model.ViewOrders:
		if u := r.session.CurrentUser(); u != nil {
			r.printOrders(r.orders.ByUser(u.ID))
		}
	}
}

func (r *repl) printAllOrders() {
	fmt.Fprintln(r.out, "--- Admin Dashboard ---")
	r.printOrders(r.orders.All())
}

func (r *repl) printOrders(orders []model.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(r.out, "No orders yet.")
		return
	}
	for _, o := range orders {
		fmt.Fprintf(r.out, "%s  %s  %-10s  %s  %s\n",
			o.ID, o.Date, o.Status, o.CustomerName, r.converter.Format(o.Total))
	}
}

// renderToast показывает и гасит текущее транзиентное сообщение.
func (r *repl) renderToast() {
	if toast := r.controller.Toast(); toast.Visible {
		fmt.Fprintf(r.out, "* %s\n", toast.Message)
		r.controller.DismissToast()
	}
	if r.controller.IsAuthModalOpen() {
		fmt.Fprintln(r.out, "(sign in with: login <email> <password>)")
	}
}

func parseIndex(args []string, length int) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > length {
		return 0, false
	}
	return n - 1, true
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/gleydi12/web-inventario/internal/form"
	"github.com/gleydi12/web-inventario/internal/gateway"
	"github.com/gleydi12/web-inventario/internal/lineitem"
	"github.com/gleydi12/web-inventario/internal/model"
	"github.com/gleydi12/web-inventario/internal/view"
)

type app struct {
	out    io.Writer
	local  bool
	client *gateway.Client
	tokens gateway.FileToken
}

// backend returns the local seeded backend or the REST resource at path.
func backend[T model.Entity[T]](a *app, path string, seed []T) view.Backend[T] {
	if a.local {
		return view.NewLocal(seed...)
	}
	return gateway.NewResource[T](a.client, path)
}

func (a *app) productos() *view.View[model.Producto] {
	return view.Productos(backend(a, gateway.PathProductos, view.SeedProductos))
}

// catalog loads the product list line views auto-fill from.
func (a *app) catalog(ctx context.Context) (*view.View[model.Producto], error) {
	v := a.productos()
	if err := v.Load(ctx); err != nil {
		return nil, err
	}
	return v, nil
}

func (a *app) detallesCompra(ctx context.Context, compraID uint) (*view.LineView[model.DetalleCompra], error) {
	cat, err := a.catalog(ctx)
	if err != nil {
		return nil, err
	}
	return view.DetallesCompra(backend(a, gateway.PathDetallesCompras, view.SeedDetallesCompra), cat.Store(), compraID), nil
}

func (a *app) detallesVenta(ctx context.Context, ventaID *uint) (*view.LineView[model.DetalleVenta], error) {
	cat, err := a.catalog(ctx)
	if err != nil {
		return nil, err
	}
	return view.DetallesVenta(backend(a, gateway.PathDetallesVentas, view.SeedDetallesVenta), cat.Store(), ventaID), nil
}

// ── login ────────────────────────────────────────────────────────────────────

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	user := fs.String("u", "", "usuario")
	pass := fs.String("p", "", "contraseña")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *user == "" || *pass == "" {
		return fmt.Errorf("%w: login requiere -u y -p", errUso)
	}
	resp, err := a.client.Login(ctx, *user, *pass)
	if err != nil {
		return err
	}
	if err := a.tokens.Save(resp.AccessToken); err != nil {
		return fmt.Errorf("guardar token: %w", err)
	}
	fmt.Fprintf(a.out, "Sesión iniciada; token guardado en %s\n", a.tokens.Path)
	return nil
}

// ── listar ───────────────────────────────────────────────────────────────────

func (a *app) listar(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: falta la entidad", errUso)
	}
	entidad := args[0]
	fs := flag.NewFlagSet("listar", flag.ContinueOnError)
	q := fs.String("q", "", "texto a buscar")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	switch entidad {
	case "productos":
		return listar(ctx, a.out, a.productos(), *q,
			[]string{"ID", "NOMBRE", "DESCRIPCIÓN", "PRECIO", "STOCK"},
			func(p model.Producto) []string {
				return []string{itoa(p.ID), p.Nombre, p.Descripcion, lineitem.FormatMoney(p.PrecioVenta), strconv.Itoa(p.Stock)}
			})
	case "proveedores":
		return listar(ctx, a.out, view.Proveedores(backend(a, gateway.PathProveedores, view.SeedProveedores)), *q,
			[]string{"ID", "NOMBRE", "TELÉFONO", "EMAIL"},
			func(p model.Proveedor) []string { return []string{itoa(p.ID), p.Nombre, p.Telefono, p.Email} })
	case "compras":
		return listar(ctx, a.out, view.Compras(backend(a, gateway.PathCompras, view.SeedCompras)), *q,
			[]string{"ID", "PROVEEDOR", "FECHA"},
			func(c model.Compra) []string { return []string{itoa(c.ID), itoa(c.ProveedorID), c.Fecha} })
	case "ventas":
		return listar(ctx, a.out, view.Ventas(backend(a, gateway.PathVentas, view.SeedVentas)), *q,
			[]string{"ID", "FECHA"},
			func(v model.Venta) []string { return []string{itoa(v.ID), v.Fecha} })
	case "detalles-compras":
		lv, err := a.detallesCompra(ctx, 0)
		if err != nil {
			return err
		}
		return listar(ctx, a.out, lv.View, *q, lineaHeader("COMPRA"), func(d model.DetalleCompra) []string {
			return lineaRow(d.ID, d.CompraID, lv.ProductName(d.ProductoID), d.Linea)
		})
	case "detalles-ventas":
		lv, err := a.detallesVenta(ctx, nil)
		if err != nil {
			return err
		}
		return listar(ctx, a.out, lv.View, *q, lineaHeader("VENTA"), func(d model.DetalleVenta) []string {
			return lineaRow(d.ID, d.VentaID, lv.ProductName(d.ProductoID), d.Linea)
		})
	default:
		return fmt.Errorf("%w: entidad desconocida %q", errUso, entidad)
	}
}

func listar[T model.Entity[T]](ctx context.Context, out io.Writer, v *view.View[T], q string, header []string, row func(T) []string) error {
	if err := v.Load(ctx); err != nil {
		return err
	}
	v.SetQuery(q)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, rec := range v.Visible() {
		fmt.Fprintln(tw, strings.Join(row(rec), "\t"))
	}
	return tw.Flush()
}

func lineaHeader(doc string) []string {
	return []string{"ID", doc, "PRODUCTO", "CANTIDAD", "PRECIO", "SUBTOTAL"}
}

func lineaRow(id, doc uint, producto string, l model.Linea) []string {
	return []string{
		itoa(id), itoa(doc), producto, strconv.Itoa(l.Cantidad),
		lineitem.FormatMoney(l.PrecioUnitario), lineitem.FormatMoney(l.Subtotal),
	}
}

func itoa(n uint) string { return strconv.FormatUint(uint64(n), 10) }

// ── crear / editar ───────────────────────────────────────────────────────────

// guardar runs crear and editar. Only the flags given on the command line
// touch the draft, so editar changes just those fields.
func (a *app) guardar(ctx context.Context, cmd string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: falta la entidad", errUso)
	}
	entidad, rest := args[0], args[1:]
	var id uint
	if cmd == "editar" {
		if len(rest) == 0 {
			return fmt.Errorf("%w: editar <entidad> <id> ...", errUso)
		}
		n, err := strconv.ParseUint(rest[0], 10, 64)
		if err != nil || n == 0 {
			return fmt.Errorf("%w: id inválido %q", errUso, rest[0])
		}
		id, rest = uint(n), rest[1:]
	}

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	parse := func() (map[string]bool, error) {
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		return set, nil
	}

	switch entidad {
	case "productos":
		nombre := fs.String("nombre", "", "nombre")
		descripcion := fs.String("descripcion", "", "descripción")
		precio := fs.Float64("precio", 0, "precio de venta")
		stock := fs.Int("stock", 0, "stock")
		set, err := parse()
		if err != nil {
			return err
		}
		return guardar(ctx, a.out, entidad, a.productos(), id, func(p *model.Producto) {
			if set["nombre"] {
				p.Nombre = *nombre
			}
			if set["descripcion"] {
				p.Descripcion = *descripcion
			}
			if set["precio"] {
				p.PrecioVenta = *precio
			}
			if set["stock"] {
				p.Stock = *stock
			}
		})
	case "proveedores":
		nombre := fs.String("nombre", "", "nombre")
		telefono := fs.String("telefono", "", "teléfono")
		email := fs.String("email", "", "email")
		set, err := parse()
		if err != nil {
			return err
		}
		v := view.Proveedores(backend(a, gateway.PathProveedores, view.SeedProveedores))
		return guardar(ctx, a.out, entidad, v, id, func(p *model.Proveedor) {
			if set["nombre"] {
				p.Nombre = *nombre
			}
			if set["telefono"] {
				p.Telefono = *telefono
			}
			if set["email"] {
				p.Email = *email
			}
		})
	case "compras":
		proveedor := fs.Uint("proveedor", 0, "id del proveedor")
		fecha := fs.String("fecha", "", "fecha AAAA-MM-DD")
		set, err := parse()
		if err != nil {
			return err
		}
		v := view.Compras(backend(a, gateway.PathCompras, view.SeedCompras))
		return guardar(ctx, a.out, entidad, v, id, func(c *model.Compra) {
			if set["proveedor"] {
				c.ProveedorID = *proveedor
			}
			if set["fecha"] {
				c.Fecha = *fecha
			}
		})
	case "ventas":
		fecha := fs.String("fecha", "", "fecha AAAA-MM-DD")
		set, err := parse()
		if err != nil {
			return err
		}
		v := view.Ventas(backend(a, gateway.PathVentas, view.SeedVentas))
		return guardar(ctx, a.out, entidad, v, id, func(vt *model.Venta) {
			if set["fecha"] {
				vt.Fecha = *fecha
			}
		})
	default:
		return fmt.Errorf("%w: entidad desconocida %q (las líneas se agregan con detalle)", errUso, entidad)
	}
}

// guardar creates a record when id is 0 and edits record id otherwise.
func guardar[T model.Entity[T]](ctx context.Context, out io.Writer, entidad string, v *view.View[T], id uint, apply func(*T)) error {
	if err := v.Load(ctx); err != nil {
		return err
	}
	if id != 0 && !v.StartEdit(id) {
		return fmt.Errorf("id %d no encontrado", id)
	}
	v.Form().Edit(apply)

	rec, err := v.Submit(ctx)
	if errors.Is(err, form.ErrValidationSkip) {
		return fmt.Errorf("%s: %w", entidad, err)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %d guardado\n", entidad, rec.GetID())
	return nil
}

// ── borrar ───────────────────────────────────────────────────────────────────

func (a *app) borrar(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: borrar <entidad> <id>", errUso)
	}
	id, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil || id == 0 {
		return fmt.Errorf("%w: id inválido %q", errUso, args[1])
	}

	switch args[0] {
	case "productos":
		err = borrar(ctx, a.productos(), uint(id))
	case "proveedores":
		err = borrar(ctx, view.Proveedores(backend(a, gateway.PathProveedores, view.SeedProveedores)), uint(id))
	case "compras":
		err = borrar(ctx, view.Compras(backend(a, gateway.PathCompras, view.SeedCompras)), uint(id))
	case "ventas":
		err = borrar(ctx, view.Ventas(backend(a, gateway.PathVentas, view.SeedVentas)), uint(id))
	case "detalles-compras":
		var lv *view.LineView[model.DetalleCompra]
		if lv, err = a.detallesCompra(ctx, 0); err == nil {
			err = borrar(ctx, lv.View, uint(id))
		}
	case "detalles-ventas":
		var lv *view.LineView[model.DetalleVenta]
		if lv, err = a.detallesVenta(ctx, nil); err == nil {
			err = borrar(ctx, lv.View, uint(id))
		}
	default:
		return fmt.Errorf("%w: entidad desconocida %q", errUso, args[0])
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s %d eliminado\n", args[0], id)
	return nil
}

func borrar[T model.Entity[T]](ctx context.Context, v *view.View[T], id uint) error {
	if err := v.Load(ctx); err != nil {
		return err
	}
	if _, ok := v.Store().Get(id); !ok {
		return fmt.Errorf("id %d no encontrado", id)
	}
	if err := v.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

// ── detalle ──────────────────────────────────────────────────────────────────

// detalle adds one line to a purchase or sale. The price comes from the
// catalog unless -precio is given.
func (a *app) detalle(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: detalle <compra|venta> ...", errUso)
	}
	tipo := args[0]
	fs := flag.NewFlagSet("detalle", flag.ContinueOnError)
	doc := fs.Uint("doc", 0, "id de la compra o venta")
	producto := fs.Uint("producto", 0, "id del producto")
	cantidad := fs.Int("cantidad", 1, "cantidad")
	precio := fs.Float64("precio", -1, "precio unitario (por defecto el del catálogo)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if *doc == 0 || *producto == 0 {
		return fmt.Errorf("%w: -doc y -producto son obligatorios", errUso)
	}

	switch tipo {
	case "compra":
		lv, err := a.detallesCompra(ctx, *doc)
		if err != nil {
			return err
		}
		return agregarLinea(ctx, a.out, lv, *producto, *cantidad, *precio)
	case "venta":
		ventaID := *doc
		lv, err := a.detallesVenta(ctx, &ventaID)
		if err != nil {
			return err
		}
		return agregarLinea(ctx, a.out, lv, *producto, *cantidad, *precio)
	default:
		return fmt.Errorf("%w: tipo desconocido %q", errUso, tipo)
	}
}

func agregarLinea[T model.LineItem[T]](ctx context.Context, out io.Writer, lv *view.LineView[T], producto uint, cantidad int, precio float64) error {
	if err := lv.Load(ctx); err != nil {
		return err
	}
	if !lv.HasProduct(producto) {
		return fmt.Errorf("producto %d no existe", producto)
	}
	lv.SelectProduct(producto)
	lv.SetCantidad(cantidad)
	if precio >= 0 {
		lv.SetPrecio(precio)
	}
	subtotal := lv.Subtotal()

	rec, err := lv.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Línea %d: %d × %s = %s (total %s)\n",
		rec.GetID(), cantidad, lv.ProductName(producto), subtotal, "$"+lv.Total().StringFixed(2))
	return nil
}

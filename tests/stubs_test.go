package tests

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/oscarmanceraa/KitchON/internal/model"

	"gorm.io/gorm"
)

// ── In-memory Repository Stubs ────────────────────────────────────────────────
// One stub per repository interface, backed by maps. They return
// gorm.ErrRecordNotFound for missing rows so that services map errors the
// same way they do against the real store.

type stubEstadoRepo struct {
	items   map[uint]*model.Estado
	findErr error // when set, FindByID fails with a store error
}

func newStubEstadoRepo() *stubEstadoRepo {
	r := &stubEstadoRepo{items: make(map[uint]*model.Estado)}
	for i, nombre := range model.Estados {
		id := uint(i + 1)
		r.items[id] = &model.Estado{ID: id, Nombre: nombre}
	}
	return r
}

func (r *stubEstadoRepo) List(_ context.Context) ([]model.Estado, error) {
	out := make([]model.Estado, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubEstadoRepo) FindByID(_ context.Context, id uint) (*model.Estado, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	e, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEstadoRepo) FindByNombre(_ context.Context, nombre string) (*model.Estado, error) {
	for _, e := range r.items {
		if e.Nombre == nombre {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type stubMesaRepo struct {
	items map[uint]*model.Mesa
}

func newStubMesaRepo(n int) *stubMesaRepo {
	r := &stubMesaRepo{items: make(map[uint]*model.Mesa)}
	for i := 1; i <= n; i++ {
		id := uint(i)
		r.items[id] = &model.Mesa{ID: id, Nombre: fmt.Sprintf("Mesa %d", i)}
	}
	return r
}

func (r *stubMesaRepo) List(_ context.Context) ([]model.Mesa, error) {
	out := make([]model.Mesa, 0, len(r.items))
	for _, m := range r.items {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubMesaRepo) FindByID(_ context.Context, id uint) (*model.Mesa, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

type stubTipoProductoRepo struct {
	items map[uint]*model.TipoProducto
}

func newStubTipoProductoRepo() *stubTipoProductoRepo {
	r := &stubTipoProductoRepo{items: make(map[uint]*model.TipoProducto)}
	for i, nombre := range []string{"Entrada", "Plato Principal", "Bebida", "Postre"} {
		id := uint(i + 1)
		r.items[id] = &model.TipoProducto{ID: id, Nombre: nombre}
	}
	return r
}

func (r *stubTipoProductoRepo) List(_ context.Context) ([]model.TipoProducto, error) {
	out := make([]model.TipoProducto, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubTipoProductoRepo) FindByID(_ context.Context, id uint) (*model.TipoProducto, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

type stubTipoUsuarioRepo struct {
	items map[uint]*model.TipoUsuario
}

func newStubTipoUsuarioRepo() *stubTipoUsuarioRepo {
	r := &stubTipoUsuarioRepo{items: make(map[uint]*model.TipoUsuario)}
	for i, nombre := range []string{
		model.TipoUsuarioAdministrador, model.TipoUsuarioMesero, model.TipoUsuarioCocina,
	} {
		id := uint(i + 1)
		r.items[id] = &model.TipoUsuario{ID: id, Nombre: nombre}
	}
	return r
}

func (r *stubTipoUsuarioRepo) List(_ context.Context) ([]model.TipoUsuario, error) {
	out := make([]model.TipoUsuario, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubTipoUsuarioRepo) FindByID(_ context.Context, id uint) (*model.TipoUsuario, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

type stubProductoRepo struct {
	items   map[uint]*model.Producto
	nextID  uint
	findErr error // when set, FindByID fails with a store error
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{items: make(map[uint]*model.Producto), nextID: 1}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uint) (*model.Producto, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	p, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	if _, ok := r.items[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

type stubUsuarioRepo struct {
	items  map[uint]*model.Usuario
	nextID uint
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{items: make(map[uint]*model.Usuario), nextID: 1}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	u.ID = r.nextID
	r.nextID++
	if u.Persona != nil && u.Persona.ID == 0 {
		u.Persona.ID = u.ID
		u.PersonaID = u.Persona.ID
	}
	r.items[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	u, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.items {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.items))
	for _, u := range r.items {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	if _, ok := r.items[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.items[u.ID] = u
	return nil
}

type stubOrdenRepo struct {
	items      map[uint]*model.Orden
	nextID     uint
	failCreate bool
}

func newStubOrdenRepo() *stubOrdenRepo {
	return &stubOrdenRepo{items: make(map[uint]*model.Orden), nextID: 1}
}

func (r *stubOrdenRepo) DB() *gorm.DB { return nil }

func (r *stubOrdenRepo) Create(_ context.Context, _ *gorm.DB, o *model.Orden) error {
	if r.failCreate {
		return gorm.ErrInvalidData
	}
	o.ID = r.nextID
	r.nextID++
	o.FechaCreacion = time.Now()
	for i := range o.Productos {
		o.Productos[i].OrdenID = o.ID
	}
	cp := *o
	r.items[o.ID] = &cp
	return nil
}

func (r *stubOrdenRepo) FindByID(_ context.Context, id uint) (*model.Orden, error) {
	o, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *stubOrdenRepo) List(_ context.Context) ([]model.Orden, error) {
	out := make([]model.Orden, 0, len(r.items))
	for _, o := range r.items {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaCreacion.After(out[j].FechaCreacion) })
	return out, nil
}

func (r *stubOrdenRepo) UpdateEstado(_ context.Context, id, estadoID uint) error {
	o, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.EstadoID = estadoID
	return nil
}

func (r *stubOrdenRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

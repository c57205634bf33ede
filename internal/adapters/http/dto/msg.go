// Package dto provides the wire forms of the engine boundary: message
// envelopes posted by the host, notification and command events, and RFC
// 9457 Problem Details error responses.
package dto

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/jsamuelsen11/delivery-core/internal/app/feature/cart"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dish"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dishes"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/home"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/menu"
	"github.com/jsamuelsen11/delivery-core/internal/app/root"
	"github.com/jsamuelsen11/delivery-core/internal/domain"
)

// MsgEnvelope is the wire form of a message: a registered type name and
// the message fields as a JSON object.
//
//	{"type": "dish.AddToCart", "payload": {"ID": "d1", "Count": 2}}
type MsgEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type msgDecoder func(json.RawMessage) (root.Msg, error)

var msgDecoders = map[string]msgDecoder{}

// register makes messages of type T decodable under name. lift wraps the
// decoded value into the root message.
func register[T any](name string, lift func(T) root.Msg) {
	msgDecoders[name] = func(raw json.RawMessage) (root.Msg, error) {
		var v T
		if len(raw) > 0 && string(raw) != "null" {
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, err
			}
		}
		return lift(v), nil
	}
}

func liftFeature[T any, M any](wrap func(M) root.Msg) func(T) root.Msg {
	return func(v T) root.Msg { return wrap(any(v).(M)) }
}

func navigate[T root.NavCmd](v T) root.Msg { return root.Navigate{Cmd: v} }

func same[T root.Msg](v T) root.Msg { return v }

func init() {
	toDishes := func(m dishes.Msg) root.Msg { return root.DishesMsg{Msg: m} }
	toDish := func(m dish.Msg) root.Msg { return root.DishMsg{Msg: m} }
	toCart := func(m cart.Msg) root.Msg { return root.CartMsg{Msg: m} }
	toMenu := func(m menu.Msg) root.Msg { return root.MenuMsg{Msg: m} }
	toHome := func(m home.Msg) root.Msg { return root.HomeMsg{Msg: m} }

	register("nav.To", navigate[root.To])
	register("nav.ToCart", navigate[root.ToCart])
	register("nav.ToDishItem", navigate[root.ToDishItem])
	register("nav.ToCategory", navigate[root.ToCategory])
	register("nav.Back", navigate[root.Back])

	register("root.UpdateCartCount", same[root.UpdateCartCount])
	register("root.ToggleLike", same[root.ToggleLike])
	register("root.AddToCart", same[root.AddToCart])
	register("root.RemoveFromCart", same[root.RemoveFromCart])
	register("root.ClickDish", same[root.ClickDish])

	register("dishes.SearchInput", liftFeature[dishes.SearchInput](toDishes))
	register("dishes.ShowDishes", liftFeature[dishes.ShowDishes](toDishes))
	register("dishes.SearchSubmit", liftFeature[dishes.SearchSubmit](toDishes))
	register("dishes.UpdateSuggestionResult", liftFeature[dishes.UpdateSuggestionResult](toDishes))
	register("dishes.ShowSuggestion", liftFeature[dishes.ShowSuggestion](toDishes))
	register("dishes.SuggestionSelect", liftFeature[dishes.SuggestionSelect](toDishes))
	register("dishes.SearchToggle", liftFeature[dishes.SearchToggle](toDishes))
	register("dishes.ConnectionFailed", liftFeature[dishes.ConnectionFailed](toDishes))
	register("dishes.ShowLoading", liftFeature[dishes.ShowLoading](toDishes))

	register("dish.IncrementCount", liftFeature[dish.IncrementCount](toDish))
	register("dish.DecrementCount", liftFeature[dish.DecrementCount](toDish))
	register("dish.ShowReviewDialog", liftFeature[dish.ShowReviewDialog](toDish))
	register("dish.HideReviewDialog", liftFeature[dish.HideReviewDialog](toDish))
	register("dish.SendReview", liftFeature[dish.SendReview](toDish))
	register("dish.ShowDish", liftFeature[dish.ShowDish](toDish))
	register("dish.AddToCart", liftFeature[dish.AddToCart](toDish))
	register("dish.ShowReviews", liftFeature[dish.ShowReviews](toDish))

	register("cart.DecrementCount", liftFeature[cart.DecrementCount](toCart))
	register("cart.IncrementCount", liftFeature[cart.IncrementCount](toCart))
	register("cart.RemoveFromCart", liftFeature[cart.RemoveFromCart](toCart))
	register("cart.ShowConfirm", liftFeature[cart.ShowConfirm](toCart))
	register("cart.HideConfirm", liftFeature[cart.HideConfirm](toCart))
	register("cart.SendOrder", liftFeature[cart.SendOrder](toCart))
	register("cart.ClickOnDish", liftFeature[cart.ClickOnDish](toCart))
	register("cart.ShowCart", liftFeature[cart.ShowCart](toCart))

	register("home.ShowRecommended", liftFeature[home.ShowRecommended](toHome))
	register("home.ShowBest", liftFeature[home.ShowBest](toHome))
	register("home.ShowPopular", liftFeature[home.ShowPopular](toHome))

	register("menu.ShowMenu", liftFeature[menu.ShowMenu](toMenu))
	register("menu.ClickCategory", liftFeature[menu.ClickCategory](toMenu))
	register("menu.PopCategory", liftFeature[menu.PopCategory](toMenu))
}

// MsgTypes returns every registered type name, sorted.
func MsgTypes() []string {
	names := make([]string, 0, len(msgDecoders))
	for name := range msgDecoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DecodeMsg converts an envelope into a message. Unknown types and
// malformed payloads are reported as *domain.ValidationError.
func DecodeMsg(env MsgEnvelope) (root.Msg, error) {
	decode, ok := msgDecoders[env.Type]
	if !ok {
		return nil, &domain.ValidationError{Fields: map[string]string{"type": fmt.Sprintf("unknown message type %q", env.Type)}}
	}
	msg, err := decode(env.Payload)
	if err == nil {
		err = checkMsg(msg)
	}
	if err != nil {
		return nil, &domain.ValidationError{Fields: map[string]string{"payload": err.Error()}}
	}
	return msg, nil
}

// checkMsg rejects messages the reducer treats as invariant violations.
func checkMsg(msg root.Msg) error {
	if nav, ok := msg.(root.Navigate); ok {
		if to, ok := nav.Cmd.(root.To); ok && !root.NamedRoute(to.Route) {
			return fmt.Errorf("route %q cannot be opened by name", to.Route)
		}
	}
	return nil
}

// EncodeMsg is the inverse of DecodeMsg.
func EncodeMsg(msg root.Msg) (MsgEnvelope, error) {
	var prefix string
	var inner any
	switch m := msg.(type) {
	case root.DishesMsg:
		prefix, inner = "dishes", m.Msg
	case root.DishMsg:
		prefix, inner = "dish", m.Msg
	case root.CartMsg:
		prefix, inner = "cart", m.Msg
	case root.HomeMsg:
		prefix, inner = "home", m.Msg
	case root.MenuMsg:
		prefix, inner = "menu", m.Msg
	case root.Navigate:
		prefix, inner = "nav", m.Cmd
	default:
		prefix, inner = "root", m
	}
	if inner == nil {
		return MsgEnvelope{}, fmt.Errorf("encoding %T: empty message", msg)
	}

	name := prefix + "." + reflect.TypeOf(inner).Name()
	if _, ok := msgDecoders[name]; !ok {
		return MsgEnvelope{}, fmt.Errorf("encoding %T: %s is not registered", msg, name)
	}
	payload, err := json.Marshal(inner)
	if err != nil {
		return MsgEnvelope{}, fmt.Errorf("encoding %s: %w", name, err)
	}
	return MsgEnvelope{Type: name, Payload: payload}, nil
}

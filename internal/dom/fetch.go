//go:build js && wasm

package dom

import (
	"encoding/json"
	"errors"
	"syscall/js"
)

// FetchJSON requests url and decodes the JSON body into v, calling done
// exactly once from the event loop.
func FetchJSON(url string, v any, done func(err error)) {
	var onResponse, onBody, onError js.Func
	release := func() {
		onResponse.Release()
		onBody.Release()
		onError.Release()
	}

	onBody = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer release()
		done(json.Unmarshal([]byte(args[0].String()), v))
		return nil
	})
	onResponse = js.FuncOf(func(this js.Value, args []js.Value) any {
		resp := args[0]
		if !resp.Get("ok").Bool() {
			defer release()
			done(errors.New("fetch " + url + ": " + resp.Get("statusText").String()))
			return nil
		}
		return resp.Call("text").Call("then", onBody)
	})
	onError = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer release()
		done(errors.New("fetch " + url + ": " + args[0].Call("toString").String()))
		return nil
	})

	js.Global().Call("fetch", url).Call("then", onResponse).Call("catch", onError)
}

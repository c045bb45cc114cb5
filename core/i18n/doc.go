// Package i18n provides the site's localization store.
//
// A Store holds an immutable Dictionary with one entry per language and a
// current selection. Keys are dotted paths into nested documents:
//
//	store, err := i18n.NewStore(
//		i18n.WithSource(i18n.NewFSSource(locales.FS, locales.Pattern)),
//		i18n.WithPreferences(preference.NewMemoryStore()),
//		i18n.WithPublisher(bus),
//	)
//	if err != nil {
//		return err
//	}
//	if err := store.Load(ctx); err != nil {
//		logger.Warn("running without dictionaries", logger.Error(err))
//	}
//	store.Text("contact.required") // "Sehemu hii inahitajika"
//
// Lookups never fail. A key that cannot be resolved, or any key while no
// dictionary is loaded, resolves to itself.
//
// # Binding
//
// Anything implementing Target can be bound to the store. Bind localizes
// it once, and every successful Switch re-localizes all bound targets
// before returning. Switch also persists the selection and publishes a
// LanguageChanged event. Listener returns the matching inbound handler so
// other components can request a change through the same bus.
//
// # Sources
//
// Dictionaries are decoded from JSON, YAML or TOML. FSSource reads them
// from any fs.FS (the bundled locales package embeds en.json and sw.json),
// HTTPSource fetches them from a base URL, and the s3 integration reads
// them from a bucket.
package i18n

package admin

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/karavella/fabric-catalog/app/models"
	"github.com/karavella/fabric-catalog/app/services"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render    *render.Render
	fabricSvc *services.FabricService
}

func NewAdminHandler(render *render.Render, fabricSvc *services.FabricService) *AdminHandler {
	return &AdminHandler{
		render:    render,
		fabricSvc: fabricSvc,
	}
}

type AdminFabricPageData struct {
	Title         string
	Message       string
	MessageStatus string
	CSRFField     template.HTML
	Fabrics       []models.Fabric
	FabricData    *FabricForm
	IsEdit        bool
	FormAction    string
	Errors        map[string]string
}

// FabricForm holds the raw form values for redisplay; validation proper
// happens on the typed submission in the service layer.
type FabricForm struct {
	ID          string
	ExternalID  string
	Name        string
	BaseImage   string
	Composition string
	WidthCM     string
	WeightGSM   string
	Flags       map[string]bool
	Variants    []VariantForm
}

type VariantForm struct {
	ID            string
	VariantCode   string
	VariantName   string
	VariantImage  string
	StockQuantity string
	HexColorCode  string
}

// flagNames are the form field names of the fifteen care/feature/weave
// checkboxes, in display order.
var flagNames = []string{
	"normalWash", "handWash", "dryCleanOnly", "noBleach", "ironLow", "tumbleDryLow",
	"waterRepellent", "blackout", "fireRetardant", "antibacterial", "stretch",
	"jacquardKnit", "plainTulle", "satinWeave", "twillWeave",
}

func (h *AdminHandler) GetFabricsPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminFabricPageData{
		Title:         "Fabric Management",
		Message:       r.URL.Query().Get("message"),
		MessageStatus: r.URL.Query().Get("status"),
		CSRFField:     csrf.TemplateField(r),
	}

	fabrics, err := h.fabricSvc.ListFabrics(r.Context())
	if err != nil {
		log.Printf("GetFabricsPage: failed to list fabrics: %v", err)
		data.Message = "Failed to load the fabric list."
		data.MessageStatus = "error"
	} else {
		data.Fabrics = fabrics
	}

	h.render.HTML(w, http.StatusOK, "admin/fabrics/index", data)
}

func (h *AdminHandler) AddFabricPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminFabricPageData{
		Title:      "Add Fabric",
		FormAction: "/admin/fabrics/add",
		IsEdit:     false,
		CSRFField:  csrf.TemplateField(r),
		FabricData: &FabricForm{
			Flags:    map[string]bool{},
			Variants: []VariantForm{{StockQuantity: "0"}},
		},
		Errors: make(map[string]string),
	}
	h.render.HTML(w, http.StatusOK, "admin/fabrics/form", data)
}

func (h *AdminHandler) AddFabricPost(w http.ResponseWriter, r *http.Request) {
	form, sub, errs := h.parseFabricForm(r)
	if form == nil {
		http.Redirect(w, r, "/admin/fabrics/add?status=error&message="+url.QueryEscape("Form parsing error."), http.StatusSeeOther)
		return
	}

	var result services.Result
	if len(errs) > 0 {
		result = services.Result{Message: "Please correct the highlighted fields.", Errors: errs}
	} else {
		result = h.fabricSvc.CreateFabric(r.Context(), sub)
	}

	if !result.Success {
		if len(result.Errors) > 0 {
			h.renderFabricForm(w, r, "Add Fabric", "/admin/fabrics/add", false, form, result)
			return
		}
		http.Redirect(w, r, "/admin/fabrics/add?status=error&message="+url.QueryEscape(result.Message), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/fabrics?status=success&message="+url.QueryEscape(result.Message), http.StatusSeeOther)
}

func (h *AdminHandler) EditFabricPage(w http.ResponseWriter, r *http.Request) {
	fabricID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		http.Redirect(w, r, "/admin/fabrics?status=error&message="+url.QueryEscape("Invalid fabric id."), http.StatusSeeOther)
		return
	}

	fabric, err := h.fabricSvc.GetFabricForEdit(r.Context(), fabricID)
	if err != nil {
		log.Printf("EditFabricPage: error loading fabric %d: %v", fabricID, err)
		http.Redirect(w, r, "/admin/fabrics?status=error&message="+url.QueryEscape("Failed to load the fabric."), http.StatusSeeOther)
		return
	}
	if fabric == nil {
		http.Redirect(w, r, "/admin/fabrics?status=error&message="+url.QueryEscape("Fabric not found."), http.StatusSeeOther)
		return
	}

	data := &AdminFabricPageData{
		Title:      "Edit Fabric",
		FormAction: fmt.Sprintf("/admin/fabrics/edit/%d", fabricID),
		IsEdit:     true,
		CSRFField:  csrf.TemplateField(r),
		FabricData: fabricToForm(fabric),
		Errors:     make(map[string]string),
	}
	h.render.HTML(w, http.StatusOK, "admin/fabrics/form", data)
}

func (h *AdminHandler) EditFabricPost(w http.ResponseWriter, r *http.Request) {
	fabricID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		http.Redirect(w, r, "/admin/fabrics?status=error&message="+url.QueryEscape("Invalid fabric id."), http.StatusSeeOther)
		return
	}
	formAction := fmt.Sprintf("/admin/fabrics/edit/%d", fabricID)

	form, sub, errs := h.parseFabricForm(r)
	if form == nil {
		http.Redirect(w, r, formAction+"?status=error&message="+url.QueryEscape("Form parsing error."), http.StatusSeeOther)
		return
	}
	form.ID = strconv.FormatUint(uint64(fabricID), 10)

	var result services.Result
	if len(errs) > 0 {
		result = services.Result{Message: "Please correct the highlighted fields.", Errors: errs}
	} else {
		result = h.fabricSvc.UpdateFabric(r.Context(), fabricID, sub)
	}

	if !result.Success {
		if len(result.Errors) > 0 {
			h.renderFabricForm(w, r, "Edit Fabric", formAction, true, form, result)
			return
		}
		http.Redirect(w, r, formAction+"?status=error&message="+url.QueryEscape(result.Message), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/fabrics?status=success&message="+url.QueryEscape(result.Message), http.StatusSeeOther)
}

// ManageVariantsPost is the variant-only flow: it submits the complete
// desired variant set for one fabric and nothing else. Core fields are
// left alone by the service because they are absent from the submission.
func (h *AdminHandler) ManageVariantsPost(w http.ResponseWriter, r *http.Request) {
	fabricID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		http.Redirect(w, r, "/admin/fabrics?status=error&message="+url.QueryEscape("Invalid fabric id."), http.StatusSeeOther)
		return
	}
	backURL := fmt.Sprintf("/admin/fabrics/edit/%d", fabricID)

	if err := r.ParseForm(); err != nil {
		log.Printf("ManageVariantsPost: form parsing error: %v", err)
		http.Redirect(w, r, backURL+"?status=error&message="+url.QueryEscape("Form parsing error."), http.StatusSeeOther)
		return
	}

	variants, _, errs := parseVariantForms(r)
	if len(errs) > 0 {
		http.Redirect(w, r, backURL+"?status=error&message="+url.QueryEscape("Please correct the variant fields."), http.StatusSeeOther)
		return
	}

	result := h.fabricSvc.UpdateFabric(r.Context(), fabricID, &services.FabricSubmission{Variants: variants})
	status := "success"
	if !result.Success {
		status = "error"
	}
	http.Redirect(w, r, backURL+"?status="+status+"&message="+url.QueryEscape(result.Message), http.StatusSeeOther)
}

func (h *AdminHandler) DeleteFabricPost(w http.ResponseWriter, r *http.Request) {
	fabricID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		http.Redirect(w, r, "/admin/fabrics?status=error&message="+url.QueryEscape("Invalid fabric id."), http.StatusSeeOther)
		return
	}

	result := h.fabricSvc.DeleteFabric(r.Context(), fabricID)
	status := "success"
	if !result.Success {
		status = "error"
	}
	http.Redirect(w, r, "/admin/fabrics?status="+status+"&message="+url.QueryEscape(result.Message), http.StatusSeeOther)
}

func (h *AdminHandler) renderFabricForm(w http.ResponseWriter, r *http.Request, title, action string, isEdit bool, form *FabricForm, result services.Result) {
	data := &AdminFabricPageData{
		Title:         title,
		FormAction:    action,
		IsEdit:        isEdit,
		CSRFField:     csrf.TemplateField(r),
		FabricData:    form,
		Errors:        result.Errors,
		Message:       result.Message,
		MessageStatus: "error",
	}
	h.render.HTML(w, http.StatusOK, "admin/fabrics/form", data)
}

// parseFabricForm reads the full fabric form into both a redisplayable
// form struct and a typed submission. Numeric coercion failures land in
// the returned error map under the submitted field name.
func (h *AdminHandler) parseFabricForm(r *http.Request) (*FabricForm, *services.FabricSubmission, map[string]string) {
	if err := r.ParseForm(); err != nil {
		log.Printf("parseFabricForm: form parsing error: %v", err)
		return nil, nil, nil
	}

	form := &FabricForm{
		ExternalID:  r.PostFormValue("externalId"),
		Name:        r.PostFormValue("name"),
		BaseImage:   r.PostFormValue("baseImage"),
		Composition: r.PostFormValue("composition"),
		WidthCM:     r.PostFormValue("widthCm"),
		WeightGSM:   r.PostFormValue("weightGsm"),
		Flags:       make(map[string]bool),
	}

	errs := make(map[string]string)
	sub := &services.FabricSubmission{
		ExternalID:  &form.ExternalID,
		Name:        &form.Name,
		BaseImage:   &form.BaseImage,
		Composition: &form.Composition,
	}

	if width, err := strconv.Atoi(form.WidthCM); err == nil {
		sub.WidthCM = &width
	} else {
		errs["widthCm"] = "widthCm must be a whole number."
	}
	if weight, err := strconv.Atoi(form.WeightGSM); err == nil {
		sub.WeightGSM = &weight
	} else {
		errs["weightGsm"] = "weightGsm must be a whole number."
	}

	for _, flag := range flagNames {
		form.Flags[flag] = r.PostFormValue(flag) != ""
	}
	applyFlags(sub, form.Flags)

	variants, variantForms, variantErrs := parseVariantForms(r)
	form.Variants = variantForms
	for field, message := range variantErrs {
		errs[field] = message
	}
	sub.Variants = variants

	return form, sub, errs
}

func parseVariantForms(r *http.Request) ([]services.VariantSubmission, []VariantForm, map[string]string) {
	codes := r.PostForm["variantCode"]
	names := r.PostForm["variantName"]
	images := r.PostForm["variantImage"]
	stocks := r.PostForm["stockQuantity"]
	hexes := r.PostForm["hexColorCode"]
	ids := r.PostForm["variantId"]

	at := func(values []string, i int) string {
		if i < len(values) {
			return values[i]
		}
		return ""
	}

	errs := make(map[string]string)
	variants := make([]services.VariantSubmission, 0, len(codes))
	forms := make([]VariantForm, 0, len(codes))

	for i := range codes {
		form := VariantForm{
			ID:            at(ids, i),
			VariantCode:   at(codes, i),
			VariantName:   at(names, i),
			VariantImage:  at(images, i),
			StockQuantity: at(stocks, i),
			HexColorCode:  at(hexes, i),
		}
		forms = append(forms, form)

		variant := services.VariantSubmission{
			VariantCode:  form.VariantCode,
			VariantName:  form.VariantName,
			VariantImage: form.VariantImage,
		}
		if form.ID != "" {
			id, err := parseID(form.ID)
			if err != nil {
				errs[fmt.Sprintf("variants[%d]", i)] = "This variant row carries an invalid id."
				continue
			}
			variant.ID = &id
		}
		if form.StockQuantity != "" {
			stock, err := strconv.Atoi(form.StockQuantity)
			if err != nil {
				errs[fmt.Sprintf("stockQuantity[%d]", i)] = "stockQuantity must be a whole number."
				continue
			}
			variant.StockQuantity = stock
		}
		if form.HexColorCode != "" {
			hex := form.HexColorCode
			variant.HexColorCode = &hex
		}
		variants = append(variants, variant)
	}

	return variants, forms, errs
}

func applyFlags(sub *services.FabricSubmission, flags map[string]bool) {
	set := func(target **bool, name string) {
		value := flags[name]
		*target = &value
	}
	set(&sub.NormalWash, "normalWash")
	set(&sub.HandWash, "handWash")
	set(&sub.DryCleanOnly, "dryCleanOnly")
	set(&sub.NoBleach, "noBleach")
	set(&sub.IronLow, "ironLow")
	set(&sub.TumbleDryLow, "tumbleDryLow")
	set(&sub.WaterRepellent, "waterRepellent")
	set(&sub.Blackout, "blackout")
	set(&sub.FireRetardant, "fireRetardant")
	set(&sub.Antibacterial, "antibacterial")
	set(&sub.Stretch, "stretch")
	set(&sub.JacquardKnit, "jacquardKnit")
	set(&sub.PlainTulle, "plainTulle")
	set(&sub.SatinWeave, "satinWeave")
	set(&sub.TwillWeave, "twillWeave")
}

func fabricToForm(fabric *models.Fabric) *FabricForm {
	form := &FabricForm{
		ID:          strconv.FormatUint(uint64(fabric.ID), 10),
		ExternalID:  fabric.ExternalID,
		Name:        fabric.Name,
		BaseImage:   fabric.BaseImage,
		Composition: fabric.Composition,
		WidthCM:     strconv.Itoa(fabric.WidthCM),
		WeightGSM:   strconv.Itoa(fabric.WeightGSM),
		Flags: map[string]bool{
			"normalWash":     fabric.NormalWash,
			"handWash":       fabric.HandWash,
			"dryCleanOnly":   fabric.DryCleanOnly,
			"noBleach":       fabric.NoBleach,
			"ironLow":        fabric.IronLow,
			"tumbleDryLow":   fabric.TumbleDryLow,
			"waterRepellent": fabric.WaterRepellent,
			"blackout":       fabric.Blackout,
			"fireRetardant":  fabric.FireRetardant,
			"antibacterial":  fabric.Antibacterial,
			"stretch":        fabric.Stretch,
			"jacquardKnit":   fabric.JacquardKnit,
			"plainTulle":     fabric.PlainTulle,
			"satinWeave":     fabric.SatinWeave,
			"twillWeave":     fabric.TwillWeave,
		},
	}
	for _, variant := range fabric.Variants {
		hex := ""
		if variant.HexColorCode != nil {
			hex = *variant.HexColorCode
		}
		form.Variants = append(form.Variants, VariantForm{
			ID:            strconv.FormatUint(uint64(variant.ID), 10),
			VariantCode:   variant.VariantCode,
			VariantName:   variant.VariantName,
			VariantImage:  variant.VariantImage,
			StockQuantity: strconv.Itoa(variant.StockQuantity),
			HexColorCode:  hex,
		})
	}
	return form
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
